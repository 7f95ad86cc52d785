package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-redis-url redis URL for the shared cache tier
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-geo enable geolocation lookups
//	-geo-url-prefix geolocation provider URL prefix
//	-geo-url-suffix geolocation provider URL suffix
//	-ip-override client IP used for every request
//	-poll-interval geo retry sweep period
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var redisURL string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var geoEnabled bool
	var geoURLPrefix, geoURLSuffix string
	var ipOverride string
	var pollInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisURL, "redis-url", "", "Redis URL")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&geoEnabled, "geo", false, "Enable geolocation lookups")
	fs.StringVar(&geoURLPrefix, "geo-url-prefix", "", "Geolocation provider URL prefix")
	fs.StringVar(&geoURLSuffix, "geo-url-suffix", "", "Geolocation provider URL suffix")
	fs.StringVar(&ipOverride, "ip-override", "", "Client IP used for every request")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Geo retry sweep period (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Redis: Redis{
				URL: redisURL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Geo: Geo{
			Enabled:    geoEnabled,
			URLPrefix:  geoURLPrefix,
			URLSuffix:  geoURLSuffix,
			IPOverride: ipOverride,
		},
		Workers: Workers{
			PollInterval: pollInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" for an unset address. IPv6 hosts are
// bracketed.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host must be empty, "localhost" or an IP
// literal; the port must be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && host != "" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
