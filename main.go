package main

import "github.com/markpoint/annotate-api/cmd"

// @title           Annotate API
// @version         1.0.0
// @description     Frame-accurate media annotation service with WebVTT/SRT/JSON export
// @contact.name    API Support
// @contact.url     https://github.com/markpoint/annotate-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http
func main() {
	cmd.Execute()
}
