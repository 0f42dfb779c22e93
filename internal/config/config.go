package config

import (
	"flag"
	"os"
	"strconv"
)

type Params struct {
	AddrRun             string
	DBConnectionString  string
	AuthSecret          string
	StartBalanceCeiling int64
}

var Config Params = Params{}

func (f *Params) Parse() {
	flag.StringVar(&f.AddrRun, "a", "localhost:8080", "address and port to run API")
	flag.StringVar(&f.DBConnectionString, "d", "", "string for connection to DB, format 'host=%s port=%s user=%s password=%s dbname=%s sslmode=%s'")
	flag.StringVar(&f.AuthSecret, "s", "fjdJ34HsdfkOsd92jsdfYsd", "secret key for signing session tokens")
	flag.Int64Var(&f.StartBalanceCeiling, "c", 10000, "ceiling for the starting balance of new accounts, in smallest currency units")
	flag.Parse()

	if envRunAddr := os.Getenv(`RUN_ADDRESS`); envRunAddr != `` {
		f.AddrRun = envRunAddr
	}

	if envDBConnectionString := os.Getenv("DATABASE_URI"); envDBConnectionString != "" {
		f.DBConnectionString = envDBConnectionString
	}

	if envAuthSecret := os.Getenv("AUTH_SECRET"); envAuthSecret != "" {
		f.AuthSecret = envAuthSecret
	}

	if envCeiling := os.Getenv("START_BALANCE_CEILING"); envCeiling != "" {
		if value, err := strconv.ParseInt(envCeiling, 10, 64); err == nil {
			f.StartBalanceCeiling = value
		}
	}
}
