// issue-token prints a signed access token for an identity.
//
//	go run ./backend/cmd/tools/issue-token -identity alice
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/itchan-dev/msgboard/shared/config"
	jwt_internal "github.com/itchan-dev/msgboard/shared/jwt"
)

func main() {
	var (
		configFolder string
		identity     string
		ttl          time.Duration
	)
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.StringVar(&identity, "identity", "", "identity to put into the token subject")
	flag.DurationVar(&ttl, "ttl", 0, "token lifetime, defaults to jwt_ttl from config")
	flag.Parse()

	if identity == "" {
		fmt.Fprintln(os.Stderr, "-identity is required")
		os.Exit(2)
	}

	cfg := config.MustLoad(configFolder)
	if ttl == 0 {
		ttl = cfg.JwtTTL()
	}

	token, err := jwt_internal.New(cfg.JwtKey(), ttl).NewToken(identity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to issue token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
