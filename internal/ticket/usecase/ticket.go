package usecase

import (
	"context"

	"isp-dashboard/internal/alert"
	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/ticket"
	"isp-dashboard/internal/ticket/repository"
	"isp-dashboard/pkg/form"
	"isp-dashboard/pkg/paginator"
)

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip ticket.ListInput) (listing.Screen, error) {
	screen, err := uc.table.Load(ctx, ip.OrganizationID, ip.Filter, ip.Access)
	if err != nil {
		if err != listing.ErrDenied {
			uc.l.Errorf(ctx, "internal.ticket.usecase.List: %v", err)
		}
		return listing.Screen{}, err
	}
	return screen, nil
}

func (uc *usecase) Dispatch(ctx context.Context, sc model.Scope, ip ticket.DispatchInput) (listing.Screen, error) {
	screen, err := uc.table.Dispatch(ctx, ip.OrganizationID, ip.Filter, ip.Action, ip.TotalCount, ip.Access)
	if err != nil {
		if err != listing.ErrDenied && err != paginator.ErrUnknownAction {
			uc.l.Errorf(ctx, "internal.ticket.usecase.Dispatch: %v", err)
		}
		return listing.Screen{}, err
	}
	return screen, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, ip ticket.DetailInput) (model.Ticket, error) {
	tkt, err := uc.detail(ctx, sc, ip)
	if err != nil {
		return model.Ticket{}, err
	}
	return uc.withDownloadURLs(ctx, tkt), nil
}

func (uc *usecase) detail(ctx context.Context, sc model.Scope, ip ticket.DetailInput) (model.Ticket, error) {
	tkt, err := uc.repo.Detail(ctx, sc, repository.DetailOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Ticket{}, ticket.ErrTicketNotFound
		}
		uc.l.Errorf(ctx, "internal.ticket.usecase.Detail: %v", err)
		return model.Ticket{}, err
	}
	return tkt, nil
}

func (uc *usecase) EditForm(ctx context.Context, sc model.Scope, ip ticket.DetailInput) (form.View[ticket.Input], error) {
	st := form.Loading[model.Ticket, ticket.Input]()

	tkt, err := uc.Detail(ctx, sc, ip)
	if err != nil {
		if err == ticket.ErrTicketNotFound {
			return form.View[ticket.Input]{}, err
		}
		st = form.Reduce(st, form.Event[model.Ticket]{Kind: form.EventFailed, Err: err}, toInput)
		return form.NewView(st, nil, false), nil
	}

	st = form.Reduce(st, form.Event[model.Ticket]{Kind: form.EventFetched, Data: tkt}, toInput)
	return form.NewView(st, uc.validator.Validate(st.Values), false), nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip ticket.CreateInput) (model.Ticket, error) {
	ip.Input.OrganizationID = ip.OrganizationID
	if errs := uc.validator.Validate(ip.Input); errs != nil {
		return model.Ticket{}, errs
	}
	if !ownedAttachments(ip.OrganizationID, ip.Input.Attachments) {
		return model.Ticket{}, ticket.ErrAttachmentNotOwned
	}

	tkt, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		OrganizationID: ip.OrganizationID,
		Input:          stripURLs(ip.Input),
	}).Unwrap()
	if err != nil {
		uc.l.Errorf(ctx, "internal.ticket.usecase.Create: %v", err)
		return model.Ticket{}, err
	}

	if tkt.Priority == model.TicketPriorityUrgent {
		uc.alertUrgent(ctx, sc, ip.OrganizationID, tkt)
	}
	return uc.withDownloadURLs(ctx, tkt), nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip ticket.UpdateInput) (model.Ticket, error) {
	ip.Input.OrganizationID = ip.OrganizationID
	if errs := uc.validator.Validate(ip.Input); errs != nil {
		return model.Ticket{}, errs
	}
	if !ownedAttachments(ip.OrganizationID, ip.Input.Attachments) {
		return model.Ticket{}, ticket.ErrAttachmentNotOwned
	}

	prev, err := uc.detail(ctx, sc, ticket.DetailInput{OrganizationID: ip.OrganizationID, ID: ip.ID})
	if err != nil {
		return model.Ticket{}, err
	}

	tkt, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
		Input:          stripURLs(ip.Input),
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Ticket{}, ticket.ErrTicketNotFound
		}
		uc.l.Errorf(ctx, "internal.ticket.usecase.Update: %v", err)
		return model.Ticket{}, err
	}

	uc.removeAttachments(ctx, droppedAttachments(prev.Attachments, tkt.Attachments))
	if tkt.Priority == model.TicketPriorityUrgent && prev.Priority != model.TicketPriorityUrgent {
		uc.alertUrgent(ctx, sc, ip.OrganizationID, tkt)
	}
	return uc.withDownloadURLs(ctx, tkt), nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, ip ticket.DetailInput) error {
	prev, err := uc.detail(ctx, sc, ip)
	if err != nil {
		return err
	}

	_, err = uc.repo.Delete(ctx, sc, repository.DetailOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return ticket.ErrTicketNotFound
		}
		uc.l.Errorf(ctx, "internal.ticket.usecase.Delete: %v", err)
		return err
	}

	uc.removeAttachments(ctx, prev.Attachments)
	return nil
}

func (uc *usecase) alertUrgent(ctx context.Context, sc model.Scope, orgID string, tkt model.Ticket) {
	ip := alert.UrgentTicketInput{
		OrganizationID: orgID,
		TicketID:       tkt.ID,
		Title:          tkt.Title,
		Description:    tkt.Description,
		Priority:       string(tkt.Priority),
		Status:         string(tkt.Status),
		Category:       tkt.Category,
		ReportedBy:     sc.Username,
		CreatedAt:      tkt.CreatedAt,
	}
	if tkt.Customer != nil {
		ip.CustomerName = tkt.Customer.FullName
	}
	uc.alerts.Go(ctx, "DispatchUrgentTicket", func(ctx context.Context) error {
		return uc.alerts.DispatchUrgentTicket(ctx, ip)
	})
}

func stripURLs(ip ticket.Input) ticket.Input {
	if len(ip.Attachments) == 0 {
		return ip
	}
	atts := make([]model.Attachment, len(ip.Attachments))
	for i, att := range ip.Attachments {
		att.URL = ""
		atts[i] = att
	}
	ip.Attachments = atts
	return ip
}

func toInput(t model.Ticket) ticket.Input {
	ip := ticket.Input{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		Category:    t.Category,
		CustomerID:  t.CustomerID.String,
		AssignedTo:  t.AssignedTo.String,
		Attachments: t.Attachments,
	}
	if t.DueDate.Valid {
		ip.DueDate = t.DueDate.Time.Format(model.DateLayout)
	}
	return ip
}
