// Command confctl resolves the layered configuration of an application and
// prints it.
//
// The resolution follows the same rules as the configuration package:
//
//	# Show the merged tree of the "billing" application
//	confctl --app billing show
//
//	# Read one value in production
//	confctl --env production get db.host
//
//	# Print the merged tree every time a config file changes
//	confctl watch -o yaml
package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-config-resolver/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo = models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
