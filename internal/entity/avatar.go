package entity

type GenerateRequest struct {
	ForegroundDir string `json:"foreground_dir"`
	BackgroundDir string `json:"background_dir"`
	OutputName    string `json:"output_name,omitempty"`
	SlackProfile  bool   `json:"slack_profile"`
	Upload        bool   `json:"upload"`
}

type GenerateResult struct {
	RunID          string `json:"run_id"`
	ForegroundPath string `json:"foreground_path"`
	BackgroundPath string `json:"background_path"`
	OutputPath     string `json:"output_path"`
	Uploaded       bool   `json:"uploaded"`
}

type SlackResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type TokenConfig struct {
	Token string `json:"token"`
}
