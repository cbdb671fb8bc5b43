package config

var Presets = map[string]*Config{
	"classic": {
		Duration: 4.0, FPS: 12.5, Output: DefaultOutput,
	},
	"quick": {
		Duration: 1.5, FPS: 30, Output: DefaultOutput,
	},
	"slow": {
		Duration: 10.0, FPS: 25, Output: DefaultOutput,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
