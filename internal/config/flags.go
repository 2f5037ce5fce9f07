package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a authority address in format [host]:[port] (client: dial, server: listen)
//	-d local database DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-tick countdown tick interval (e.g., "1s")
//	-resync authority resync interval (e.g., "10s")
//	-log-file client log file path
//	-quiz-file authority YAML quiz descriptor
//	-allowed-origins comma separated CORS origins
func parseFlags(args []string) (*StructuredConfig, error) {
	var address NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var tickInterval time.Duration
	var resyncInterval time.Duration
	var logFile string
	var quizFile string
	var allowedOrigins string

	fs := flag.NewFlagSet(flagSetName(), flag.ContinueOnError)
	fs.Var(&address, "a", "Authority address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&tickInterval, "tick", 0, "Countdown tick interval (e.g., 1s)")
	fs.DurationVar(&resyncInterval, "resync", 0, "Authority resync interval (e.g., 10s)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&quizFile, "quiz-file", "", "YAML quiz descriptor served by the authority")
	fs.StringVar(&allowedOrigins, "allowed-origins", "", "Comma separated CORS origins")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    address.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    address.String(),
			RequestTimeout: requestTimeout,
			QuizFile:       quizFile,
			AllowedOrigins: splitList(allowedOrigins),
		},
		Workers: Workers{
			TickInterval:   tickInterval,
			ResyncInterval: resyncInterval,
		},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func flagSetName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "quiz"
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
