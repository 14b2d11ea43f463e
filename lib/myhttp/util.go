package myhttp

import (
	"fmt"
	"net/http"
	"os"
)

// GuessHostnameWithScheme derives the public hostname without having a
// request at hand. Used when subscriptions are registered at startup.
func GuessHostnameWithScheme() string {
	project := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if project == "" {
		return "http://localhost:8080"
	}

	return fmt.Sprintf("https://%s.appspot.com", project)
}

func HostnameWithScheme(r *http.Request) string {
	project := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if project == "marcsexperiment" {
		return "https://www.marcgrolconsultancy.nl"
	}

	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}

	return fmt.Sprintf("%s://%s", scheme, r.Host)
}
