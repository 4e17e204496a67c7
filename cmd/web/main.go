// Command web serves the site content API.
package main

import "sitecms_backend/internal/app"

func main() {
	app.Run()
}
