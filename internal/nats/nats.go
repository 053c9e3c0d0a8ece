package nats

import (
	"os"

	"github.com/nats-io/nats.go"
)

const defaultURL = "nats://localhost:4222"

type Nats struct {
	Url   string
	Token string
	Conn  *nats.Conn
}

// resolveURL prefers NATS_URL and falls back to the local default.
func resolveURL() string {
	if url := os.Getenv("NATS_URL"); url != "" {
		return url
	}
	return defaultURL
}

// Connect dials the NATS server. The connection is named after the
// calling service so it can be told apart in server monitoring.
func Connect(service string) (*Nats, error) {
	n := &Nats{
		Url:   resolveURL(),
		Token: os.Getenv("NATS_TOKEN"),
	}

	opts := []nats.Option{
		nats.Name("scorely-" + service),
	}

	if n.Token != "" {
		opts = append(opts, nats.Token(n.Token))
	}

	conn, err := nats.Connect(n.Url, opts...)
	if err != nil {
		return nil, err
	}

	n.Conn = conn

	return n, nil
}
