package main

import (
	_ "embed"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tomz197/invaders/internal/config"
)

//go:embed index.html
var htmlPage string

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("failed to load settings", "err", err)
	}

	logger, closer, err := settings.Log.NewLogger(os.Stderr, "web")
	if err != nil {
		log.Fatal("failed to create logger", "err", err)
	}
	defer closer.Close()

	http.Handle("/", pageHandler(settings.Web.DisplayHost, settings.SSH.Port))

	addr := net.JoinHostPort(settings.Web.Host, settings.Web.Port)
	logger.Info("Starting web server", "url", "http://"+addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// pageHandler serves the landing page with the ssh command filled in.
func pageHandler(sshHost, sshPort string) http.Handler {
	command := "ssh " + sshHost
	if sshPort != "22" {
		command = fmt.Sprintf("ssh -p %s %s", sshPort, sshHost)
	}
	page := strings.ReplaceAll(htmlPage, "{{.SSHCommand}}", command)
	page = strings.ReplaceAll(page, "{{.SSHHost}}", sshHost)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
}
