package config

type Config struct {
	InputPath    string
	OutputPath   string
	OutputFormat string
	FramesDir    string
	TotalFrames  int
	Workers      int
	PrintGraph   bool
	ShowStats    bool
	BuildVersion string
}
