package config

import (
	"flag"
)

// ParseFlags reads the command line shared by every binary. Flags that
// are set explicitly override the settings file named by -config.
func ParseFlags(fs *flag.FlagSet, args []string) (Settings, error) {
	var (
		path     = fs.String("config", "", "JSON settings file")
		seed     = fs.Int64("seed", 0, "random seed, 0 for time based")
		airport  = fs.String("airport", "", "active airport ICAO code")
		speed    = fs.Float64("speed", 0, "initial simulation speed")
		logLevel = fs.String("log-level", "", "debug, info, warn, error or off")
		logFile  = fs.String("log-file", "", "rotating log file, stderr when empty")
		addr     = fs.String("addr", "", "HTTP listen address")
	)
	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}

	s, err := Load(*path)
	if err != nil {
		return s, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			s.Seed = *seed
		case "airport":
			s.Airport = *airport
		case "speed":
			s.SimulationSpeed = *speed
		case "log-level":
			s.LogLevel = *logLevel
		case "log-file":
			s.LogFile = *logFile
		case "addr":
			s.HTTPAddr = *addr
		}
	})
	return s, s.Validate()
}
