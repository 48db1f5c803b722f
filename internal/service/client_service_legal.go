package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bank-shell/internal/app"
	"github.com/MKhiriev/go-bank-shell/models"
)

var legalNotices = map[models.LegalDocument]models.Acknowledgement{
	models.DocumentTerms:   {Title: app.TitleTerms, Message: app.MsgTermsInDevelopment},
	models.DocumentPrivacy: {Title: app.TitlePrivacy, Message: app.MsgPrivacyInDevelopment},
}

type placeholderLegalService struct{}

// NewClientLegalService returns the placeholder [ClientLegalService].
func NewClientLegalService() ClientLegalService {
	return &placeholderLegalService{}
}

func (s *placeholderLegalService) Document(ctx context.Context, doc models.LegalDocument) (models.Acknowledgement, error) {
	if err := ctx.Err(); err != nil {
		return models.Acknowledgement{}, err
	}

	ack, ok := legalNotices[doc]
	if !ok {
		return models.Acknowledgement{}, fmt.Errorf("%w: %q", ErrUnknownDocument, doc)
	}
	return ack, nil
}
