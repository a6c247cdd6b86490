package main

import (
	"flag"
	"sync"
	"time"

	mvccgo "mvcc-go"
	"mvcc-go/redis"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/redcon"
)

type MvccServer struct {
	store  *redis.TxnStore
	server *redcon.Server
	mu     *sync.RWMutex
}

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logrus.Fatalf("load config failed: %v", err)
	}

	indexType, err := cfg.indexType()
	if err != nil {
		logrus.Fatal(err)
	}

	store, err := redis.NewTxnStore(mvccgo.Options{Index: indexType})
	if err != nil {
		logrus.Fatalf("open engine failed: %v", err)
	}

	mvccServer := &MvccServer{
		store: store,
		mu:    new(sync.RWMutex),
	}

	// vacuum scheduling is the caller's business, the engine never
	// spawns goroutines on its own
	if cfg.VacuumIntervalSec > 0 {
		go func() {
			ticker := time.NewTicker(time.Duration(cfg.VacuumIntervalSec) * time.Second)
			defer ticker.Stop()
			for range ticker.C {
				store.Vacuum()
			}
		}()
	}

	mvccServer.server = redcon.NewServer(cfg.Addr, execClientCmd, mvccServer.accept, mvccServer.closed)
	mvccServer.Listen(cfg.Addr)
}

func (svr *MvccServer) Listen(addr string) {
	logrus.Infof("mvcc server running on %v, ready to accept connection", addr)
	_ = svr.server.ListenAndServe()
}

func (svr *MvccServer) accept(conn redcon.Conn) bool {
	clt := new(MvccClient)
	svr.mu.Lock()
	defer svr.mu.Unlock()

	clt.sessionID = uuid.NewString()
	clt.store = svr.store

	logrus.Infof("accept connection %v from %v", clt.sessionID, conn.RemoteAddr())
	conn.SetContext(clt)

	return true
}

func (svr *MvccServer) closed(conn redcon.Conn, err error) {
	clt, ok := conn.Context().(*MvccClient)
	if !ok {
		return
	}
	logrus.Infof("close connection %v", clt.sessionID)
}
