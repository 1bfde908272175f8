package app

import (
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"

	"puzshelf/internal/db"
)

const (
	SubjectImported = "puzzles.imported"
	SubjectDeleted  = "puzzles.deleted"
)

type Service struct {
	Queries *db.Queries

	db *sql.DB

	NatsServer *server.Server

	NC *nats.Conn

	StartTime int64
}

// PuzzleEvent is the payload published on SubjectImported and SubjectDeleted.
type PuzzleEvent struct {
	ID     string `json:"id"`
	Title  string `json:"title,omitempty"`
	Digest string `json:"digest,omitempty"`
}

func NewService(queries *db.Queries, dbConn *sql.DB) *Service {
	s := &Service{
		Queries:   queries,
		db:        dbConn,
		StartTime: time.Now().UnixMilli(),
	}

	s.startNats()

	return s
}

func (s *Service) startNats() {
	opts := &server.Options{
		Port:  -1,
		NoLog: true,
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		log.Printf("Failed to create NATS server: %v", err)
		return
	}

	go ns.Start()

	if !ns.ReadyForConnections(2 * time.Second) {
		log.Printf("NATS server failed to become ready")
		return
	}

	log.Printf("NATS server ready at %s", ns.ClientURL())
	s.NatsServer = ns

	nc, err := nats.Connect(ns.ClientURL())
	if err != nil {
		log.Printf("NATS client failed to connect: %v", err)
		return
	}
	log.Printf("NATS client connected")
	s.NC = nc
}

func (s *Service) Shutdown() {
	if s.NC != nil {
		s.NC.Close()
	}

	if s.NatsServer != nil {
		s.NatsServer.Shutdown()
		s.NatsServer.WaitForShutdown()
	}
}

func (s *Service) publish(subject string, event PuzzleEvent) {
	if s.NC == nil {
		log.Printf("Broadcast skipped: NATS connection is nil")
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to encode %s event: %v", subject, err)
		return
	}

	log.Printf("Publishing to NATS: %s -> %s", subject, event.ID)
	if err := s.NC.Publish(subject, payload); err != nil {
		log.Printf("Publish %s failed: %v", subject, err)
	}
}
