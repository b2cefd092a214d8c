// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress is a flag.Value for listen and dial addresses.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a            HTTP address in format [host]:[port]
//	-grpc-address gRPC address in format [host]:[port]
//	-d            database DSN
//	-db-path      client SQLite file
//	-c/-config    JSON or YAML config file path
//	-token-sign-key, -token-issuer, -token-duration
//	-request-timeout
//	-hash-key     request integrity key
//	-inbox        audio inbox directory
//	-log-file     client log file
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("voice-notes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var httpAddress, grpcAddress NetAddress
	var (
		databaseDSN    string
		localPath      string
		configPath     string
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		requestTimeout time.Duration
		hashKey        string
		inboxDir       string
		logFile        string
	)

	fs.Var(&httpAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&localPath, "db-path", "", "Local SQLite database path")
	fs.StringVar(&configPath, "c", "", "Config file path (.json, .yaml)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Request integrity hash key")
	fs.StringVar(&inboxDir, "inbox", "", "Audio inbox directory")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashKey:       hashKey,
			LogFile:       logFile,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Local: Local{Path: localPath},
		},
		Server: Server{
			HTTPAddress:    httpAddress.String(),
			GRPCAddress:    grpcAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    httpAddress.String(),
			GRPCAddress:    grpcAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Inbox:    Inbox{Dir: inboxDir},
		FilePath: configPath,
	}, nil
}

var errBadAddress = errors.New("address must be host:port")

// String joins the address back into host:port form, bracketing IPv6 hosts.
// An unset address yields "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts localhost, an IP literal or an empty host (all interfaces)
// followed by a port in 1-65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %q", errBadAddress, s)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q out of range 1-65535", errBadAddress, rawPort)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: host %q is neither localhost nor an IP", errBadAddress, host)
	}

	a.Host, a.Port = host, port
	return nil
}
