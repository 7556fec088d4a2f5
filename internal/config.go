package internal

import (
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

var c *config

const (
	RunAddress      = "RUN_ADDRESS"
	DatabaseURI     = "DATABASE_URI"
	JWTSecret       = "JWT_SECRET"
	PlatformFeeRate = "PLATFORM_FEE_RATE"
)

const (
	defaultRunAddress = "localhost:8080"
	defaultJWTSecret  = "secret"
	defaultFeeRate    = "0.04"
)

const (
	host     = "localhost"
	port     = 5432
	user     = "postgres"
	password = "12345"
)

type config struct {
	RunAddress  string
	DatabaseURI string
	JWTSecret   string
	FeeRate     decimal.Decimal

	feeRate string
}

func NewConfig() (*config, error) {
	c = new(config)

	defaultConn := fmt.Sprintf("host=%s port=%d user=%s "+
		"password=%s sslmode=disable", // database=waxmart
		host, port, user, password)

	flag.StringVar(&c.RunAddress, "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")
	flag.StringVar(&c.DatabaseURI, "d", setEnvOrDefault(DatabaseURI, defaultConn), "postgres connection path")
	flag.StringVar(&c.JWTSecret, "s", setEnvOrDefault(JWTSecret, defaultJWTSecret), "JWT signing secret")
	flag.StringVar(&c.feeRate, "f", setEnvOrDefault(PlatformFeeRate, defaultFeeRate), "platform fee rate, e.g. 0.04")

	flag.Parse()

	rate, err := decimal.NewFromString(c.feeRate)
	if err != nil {
		return nil, fmt.Errorf("invalid platform fee rate %q: %w", c.feeRate, err)
	}
	c.FeeRate = rate

	return c, nil
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}
