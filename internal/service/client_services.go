package service

import (
	"github.com/MKhiriev/go-landing-builder/internal/adapter"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/store"
)

type ClientServices struct {
	AuthService  ClientAuthService
	PageService  ClientPageService
	DraftService ClientDraftService
	DraftJob     ClientDraftJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	draftSvc := NewClientDraftService(localStore.DraftRepository, logger)

	return &ClientServices{
		AuthService:  NewClientAuthService(serverAdapter, logger),
		PageService:  NewClientPageService(serverAdapter, logger),
		DraftService: draftSvc,
		DraftJob:     NewClientDraftJob(draftSvc),
	}
}
