package entity

import "errors"

var (
	ErrSupplierNotFound      = errors.New("supplier not found")
	ErrLeadNotFound          = errors.New("lead not found")
	ErrEmailCampaignNotFound = errors.New("email campaign not found")
)
