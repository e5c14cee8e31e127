package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"lead_qualifier/internal/domain/entity"
	"lead_qualifier/internal/domain/service/lead"
	"lead_qualifier/internal/infrastructure/csvexport"
	"lead_qualifier/internal/infrastructure/plot"
	"lead_qualifier/pkg/httpx/reply"
	"lead_qualifier/pkg/httpx/req"
	"lead_qualifier/pkg/rest"
)

type leadService interface {
	All(context.Context) []entity.Lead
	Options(context.Context) entity.Options
	ParseQuery(context.Context, lead.QueryParams) (lead.Query, error)
	Query(context.Context, lead.Query) (lead.Result, error)
}

type exportRecorder interface {
	ObserveExport(rows int)
}

type nopExportRecorder struct{}

func (nopExportRecorder) ObserveExport(int) {}

type LeadServer struct {
	leadService    leadService
	exportRecorder exportRecorder
	now            func() time.Time
}

func NewLeadServer(leadService leadService) LeadServer {
	return LeadServer{
		leadService:    leadService,
		exportRecorder: nopExportRecorder{},
		now:            time.Now,
	}
}

func (s LeadServer) WithExportRecorder(recorder exportRecorder) LeadServer {
	s.exportRecorder = recorder
	return s
}

// WithClock sets the clock used to date export file names.
func (s LeadServer) WithClock(now func() time.Time) LeadServer {
	s.now = now
	return s
}

func (s LeadServer) getV1Leads(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	leads := s.leadService.All(ctx)

	reply.JSON(ctx, w, http.StatusOK, rest.LeadList{
		Leads: newRESTLeads(leads),
		Total: len(leads),
	})

	return nil
}

func (s LeadServer) getV1LeadsOptions(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	reply.JSON(ctx, w, http.StatusOK, newRESTOptions(s.leadService.Options(ctx)))

	return nil
}

func (s LeadServer) postV1LeadsQuery(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	result, err := s.query(r)
	if err != nil {
		return fmt.Errorf("s.query: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.LeadQueryResult{
		Leads:   newRESTLeads(result.Leads),
		Summary: newRESTSummary(result.Summary),
	})

	return nil
}

func (s LeadServer) postV1LeadsExport(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	result, err := s.query(r)
	if err != nil {
		return fmt.Errorf("s.query: %w", err)
	}

	err = reply.Attachment(ctx, w, csvexport.ContentType, csvexport.FileName(s.now()), func(buf *bytes.Buffer) error {
		if err := csvexport.Write(buf, result.Leads); err != nil {
			return fmt.Errorf("csvexport.Write: %w", err)
		}

		s.exportRecorder.ObserveExport(len(result.Leads))

		return nil
	})
	if err != nil {
		return fmt.Errorf("reply.Attachment: %w", err)
	}

	return nil
}

func (s LeadServer) postV1LeadsChart(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	kind, err := plot.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		return fmt.Errorf("plot.ParseKind: %w", err)
	}

	result, err := s.query(r)
	if err != nil {
		return fmt.Errorf("s.query: %w", err)
	}

	err = reply.Attachment(ctx, w, plot.ContentType, plot.FileName(kind), func(buf *bytes.Buffer) error {
		return plot.Render(buf, kind, result.Summary)
	})
	if err != nil {
		return fmt.Errorf("reply.Attachment: %w", err)
	}

	return nil
}

func (s LeadServer) query(r *http.Request) (lead.Result, error) {
	ctx := r.Context()

	var request rest.LeadQuery

	if err := req.Read(r, &request); err != nil {
		return lead.Result{}, fmt.Errorf("req.Read: %w", err)
	}

	query, err := s.leadService.ParseQuery(ctx, newQueryParams(request))
	if err != nil {
		return lead.Result{}, fmt.Errorf("leadService.ParseQuery: %w", err)
	}

	result, err := s.leadService.Query(ctx, query)
	if err != nil {
		return lead.Result{}, fmt.Errorf("leadService.Query: %w", err)
	}

	return result, nil
}
