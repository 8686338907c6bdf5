package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/badger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/kodekulture/wordle-solver/handler"
	"github.com/kodekulture/wordle-solver/internal/config"
	"github.com/kodekulture/wordle-solver/repository"
	"github.com/kodekulture/wordle-solver/repository/badgr"
	"github.com/kodekulture/wordle-solver/repository/postgres"
	"github.com/kodekulture/wordle-solver/service"
	"github.com/kodekulture/wordle-solver/solver"
	"github.com/kodekulture/wordle-solver/solver/word"
)

func main() {
	answer := flag.String("answer", "", "solve this answer once and exit instead of serving")
	flag.Parse()

	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(config.GetOrDefault("LOG_LEVEL", "debug")); err == nil {
		zerolog.SetGlobalLevel(lvl)
		zlog.WithLevel(lvl).Msgf("Setting log level to %v", lvl)
	}

	dict, err := getDictionary()
	if err != nil {
		log.Fatal(err)
	}

	if a := firstNonEmpty(*answer, config.Get("ANSWER")); a != "" {
		solveOnce(a, dict)
		return
	}

	done := make(chan struct{})
	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var sr repository.Solve
	if url := config.Get("POSTGRES_URL"); url != "" {
		db, err := getConnection(appCtx, url)
		if err != nil {
			log.Fatal(err)
		}
		sr = postgres.NewSolveRepo(db)
	} else {
		zlog.Warn().Msg("POSTGRES_URL not set, results are not stored permanently")
	}
	cache, err := getCacher()
	if err != nil {
		log.Fatal(err)
	}
	srv, err := service.New(appCtx, sr, badgr.New(cache), dict)
	if err != nil {
		log.Fatal(err)
	}
	h := handler.New(srv)
	go shutdown(h, srv, done)
	log.Printf("server started on port: %s", config.GetOrDefault("PORT", "8080"))
	if err = h.Start(config.GetOrDefault("PORT", "8080")); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	<-done
}

// solveOnce plays a single run against the console, the one-shot mode of
// the solver.
func solveOnce(answer string, dict *word.Dictionary) {
	answerWord := word.New(answer)
	if answerWord.Len() != word.Length {
		log.Fatalf("answer must be %d letters long", word.Length)
	}
	run := solver.New(answerWord, dict.Words())
	status := run.Solve(solver.ReporterFunc(func(o solver.Observation) {
		fmt.Printf("%2d. %s  %s  %d remaining\n", o.Attempt, o.Guess, o.Rendered, o.Remaining)
	}))
	switch status {
	case solver.Solved:
		fmt.Printf("%2d. %s  %s\n", run.Attempts(), run.Guess(), run.Score().Render())
		fmt.Printf("solved %q in %d attempts\n", run.Guess(), run.Attempts())
	case solver.Exhausted:
		fmt.Printf("candidates exhausted after %q, answer is not in the dictionary\n", run.Guess())
		os.Exit(1)
	}
}

func getDictionary() (*word.Dictionary, error) {
	if path := config.Get("DICTIONARY_PATH"); path != "" {
		return word.LoadFile(path)
	}
	return word.NewLocalDict(), nil
}

func getConnection(ctx context.Context, url string) (*pgxpool.Pool, error) {
	conn, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	err = conn.Ping(ctx)
	if err != nil {
		return nil, errors.Join(err, errors.New("failed to ping database"))
	}
	return conn, nil
}

func getCacher() (*badger.DB, error) {
	// Open the Badger database located in BADGER_PATH.
	// It will be created if it doesn't exist.
	db, err := badger.Open(badger.DefaultOptions(config.GetOrDefault("BADGER_PATH", "/tmp/wordle-solver")))
	if err != nil {
		return nil, err
	}
	return db, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func shutdown(h *handler.Handler, srv *service.Service, done chan<- struct{}) {
	// Wait for interrupt signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-sig
	log.Println("shutdown started")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	srv.Stop(ctx)
	if err := h.Stop(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("shutdown complete")
	close(done)
}
