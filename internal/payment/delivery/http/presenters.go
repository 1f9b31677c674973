package http

import (
	"strings"

	"isp-dashboard/internal/payment"
)

type configReq struct {
	OrganizationID string
}

func (r configReq) validate() error {
	if strings.TrimSpace(r.OrganizationID) == "" {
		return errWrongParams
	}
	return nil
}

type mpesaReq struct {
	OrganizationID string `json:"-"`
	payment.MpesaInput
}

func (r mpesaReq) validate() error {
	if strings.TrimSpace(r.OrganizationID) == "" {
		return errWrongParams
	}
	return nil
}

func (r mpesaReq) toInput() payment.UpdateMpesaInput {
	return payment.UpdateMpesaInput{OrganizationID: r.OrganizationID, Input: r.MpesaInput}
}

type kopoKopoReq struct {
	OrganizationID string `json:"-"`
	payment.KopoKopoInput
}

func (r kopoKopoReq) validate() error {
	if strings.TrimSpace(r.OrganizationID) == "" {
		return errWrongParams
	}
	return nil
}

func (r kopoKopoReq) toInput() payment.UpdateKopoKopoInput {
	return payment.UpdateKopoKopoInput{OrganizationID: r.OrganizationID, Input: r.KopoKopoInput}
}
