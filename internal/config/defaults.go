package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"width":               0,
		"true_color":          false,
		"gradient_hue":        210.0,
		"gradient_saturation": 0.6,
		"update_delay_ms":     150,
		"marker_dir":          "",
		"workers":             4,
		"total":               20,
	}
}
