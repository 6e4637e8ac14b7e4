package config

import (
	goflag "flag"

	"github.com/spf13/pflag"
)

type (
	Config struct {
		Relay      Relay
		Webrtc     Webrtc
		Monitoring Monitoring
	}
	Relay struct {
		Debug  bool
		Server Server
	}
	Server struct {
		Address string
		Https   bool
		Tls     struct {
			Address string
			Domain  string
			Cert    string
			Key     string
		}
	}
	Webrtc struct {
		IceServers []IceServer
	}
	IceServer struct {
		Urls       string `json:"urls,omitempty"`
		Username   string `json:"username,omitempty"`
		Credential string `json:"credential,omitempty"`
	}
	Monitoring struct {
		Port             int
		URLPrefix        string `fig:"urlPrefix"`
		MetricEnabled    bool
		ProfilingEnabled bool
	}
)

func (m Monitoring) IsEnabled() bool { return m.MetricEnabled || m.ProfilingEnabled }

func (s Server) GetAddr() string {
	if s.Https {
		return s.Tls.Address
	}
	return s.Address
}

// NewConfig parses the command line flags and loads the config file from
// the default paths (or a custom one from the --conf flag) with env
// overrides applied. Flags take precedence over the file values.
func NewConfig() (conf Config) {
	fs := pflag.CommandLine
	path := fs.StringP("conf", "c", "", "custom configuration file path")
	debug := fs.BoolP("debug", "d", false, "enable debug logging")
	address := fs.String("address", "", "relay server address override")
	fs.AddGoFlagSet(goflag.CommandLine)
	pflag.Parse()

	if err := LoadConfig(&conf, *path); err != nil {
		panic(err)
	}
	if *debug {
		conf.Relay.Debug = true
	}
	if *address != "" {
		conf.Relay.Server.Address = *address
	}
	return
}
