package server

import (
	"context"

	"github.com/screenbeam/screenbeam/pkg/logger"
)

type Server interface {
	Run()
	Shutdown(ctx context.Context) error
	String() string
}

type Services []Server

func (svs *Services) AddIf(cond bool, s Server) *Services {
	if cond {
		*svs = append(*svs, s)
	}
	return svs
}

func (svs *Services) Add(s Server) *Services {
	*svs = append(*svs, s)
	return svs
}

func (svs *Services) Start() {
	for _, s := range *svs {
		s.Run()
	}
}

func (svs *Services) Stop(ctx context.Context, log *logger.Logger) {
	for _, s := range *svs {
		if err := s.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msgf("failed to stop [%s]", s)
		}
	}
}
