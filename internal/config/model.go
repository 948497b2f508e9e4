package config

type Model struct {
	Path string `env:"MODEL_PATH" envDefault:"models/student_rf_pipeline.json"`
	// URL switches prediction to a remote inference endpoint.
	URL string `env:"MODEL_URL"`
}

type Bounds struct {
	AgeMin     float64 `env:"AGE_MIN"     envDefault:"15"`
	AgeMax     float64 `env:"AGE_MAX"     envDefault:"30"`
	SSCMin     float64 `env:"SSC_MIN"     envDefault:"2.50"`
	SSCMax     float64 `env:"SSC_MAX"     envDefault:"5.00"`
	TuitionMin float64 `env:"TUITION_MIN" envDefault:"0"`
	TuitionMax float64 `env:"TUITION_MAX" envDefault:"134168"`
}
