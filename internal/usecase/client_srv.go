package usecase

import (
	"context"
	"fmt"

	"corfumania-backoffice/internal/data/repository"
	"corfumania-backoffice/internal/dto/response"

	"go.uber.org/zap"
)

type ClientService interface {
	List(ctx context.Context) ([]response.ClientResponse, error)
}

type clientService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewClientService(repo *repository.Repository, log *zap.Logger) ClientService {
	return &clientService{
		repo: repo,
		log:  log.With(zap.String("service", "client")),
	}
}

func (s *clientService) List(ctx context.Context) ([]response.ClientResponse, error) {
	clients, err := s.repo.Client.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list clients", zap.Error(err))
		return nil, fmt.Errorf("failed to list clients")
	}

	responses := make([]response.ClientResponse, len(clients))
	for i, client := range clients {
		responses[i] = response.ClientToResponse(client)
	}

	return responses, nil
}
