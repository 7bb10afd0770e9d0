package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
)

// Server runs the REST and gRPC listeners side by side against one shared
// service instance and shuts both down on the first error or signal.
type Server struct {
	httpServer *http.Server
	grpcServer *grpc.Server
	grpcAddr   string
}

func New(httpPort string, handler http.Handler, grpcPort string, grpcServer *grpc.Server) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + httpPort,
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		grpcServer: grpcServer,
		grpcAddr:   ":" + grpcPort,
	}
}

func (s *Server) Run() error {
	serverErrors := make(chan error, 2)

	lis, err := net.Listen("tcp", s.grpcAddr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	go func() {
		log.Info().Str("addr", s.grpcAddr).Msg("grpc server starting")
		serverErrors <- s.grpcServer.Serve(lis)
	}()

	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("http server starting")
		serverErrors <- s.httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		s.grpcServer.Stop()
		s.httpServer.Close()
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		s.grpcServer.GracefulStop()

		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
			if err := s.httpServer.Close(); err != nil {
				return fmt.Errorf("could not stop server: %w", err)
			}
		}

		log.Info().Msg("shutdown complete")
	}

	return nil
}
