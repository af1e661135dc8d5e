package settings

// Environment variables read by EnvLayer.
const (
	EnvAPIKey = "WEATHER_API_KEY"
	EnvUnits  = "WEATHER_UNITS"
	EnvTime   = "WEATHER_TIME"
	EnvDate   = "WEATHER_DATE"
)

// EnvLayer builds a layer from WEATHER_* variables. Empty values are ignored.
// lookup is normally os.LookupEnv.
func EnvLayer(lookup func(string) (string, bool)) Layer {
	get := func(key string) *string {
		if v, ok := lookup(key); ok && v != "" {
			return &v
		}
		return nil
	}
	return Layer{
		APIKey: get(EnvAPIKey),
		Units:  get(EnvUnits),
		Time:   get(EnvTime),
		Date:   get(EnvDate),
	}
}
