package config

import (
	"log"

	"github.com/spf13/pflag"
)

var (
	InteractiveClamp float64 = 20.0                   // |y| above this is hidden on the live chart
	StaticClamp      float64 = 15.0                   // |y| above this is hidden on problem graphs
	APIAddr          string  = ":8080"                // HTTP API listen address
	RPCAddr          string  = ":3410"                // net/rpc listen address, empty disables it
	DBPath           string  = ".explorer/samples.db" // sqlite file for exports
)

// Bind registers the configuration flags on fs
func Bind(fs *pflag.FlagSet) {
	fs.Float64Var(&InteractiveClamp, "interactive-clamp", InteractiveClamp, "hide live chart values with |y| above this")
	fs.Float64Var(&StaticClamp, "static-clamp", StaticClamp, "hide problem graph values with |y| above this")
	fs.StringVar(&APIAddr, "api", APIAddr, "HTTP API listen address")
	fs.StringVar(&RPCAddr, "rpc", RPCAddr, "RPC listen address (empty to disable)")
	fs.StringVar(&DBPath, "db", DBPath, "sqlite database for exports")
}

// Load checks the parsed values and logs them
func Load() {
	if InteractiveClamp <= 0 {
		InteractiveClamp = 20.0
	}
	if StaticClamp <= 0 {
		StaticClamp = 15.0
	}

	log.Printf("Config loaded. InteractiveClamp [%g] StaticClamp [%g] API [%s] RPC [%s] DB [%s]",
		InteractiveClamp, StaticClamp, APIAddr, RPCAddr, DBPath)
}
