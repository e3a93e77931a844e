package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/peopledesk/hris-backend-go/internal/domain/employee"
	"github.com/peopledesk/hris-backend-go/internal/domain/recruitment"
	"github.com/peopledesk/hris-backend-go/internal/handler/http/response"
)

type RecruitmentHandler interface {
	CreateOpening(w http.ResponseWriter, r *http.Request)
	UpdateOpening(w http.ResponseWriter, r *http.Request)
	ListOpenings(w http.ResponseWriter, r *http.Request)

	CreateApplicant(w http.ResponseWriter, r *http.Request)
	ListApplicants(w http.ResponseWriter, r *http.Request)
	UpdateApplicantStatus(w http.ResponseWriter, r *http.Request)
	Hire(w http.ResponseWriter, r *http.Request)

	ScheduleInterview(w http.ResponseWriter, r *http.Request)
	ListInterviews(w http.ResponseWriter, r *http.Request)
}

type RecruitmentHandlerImpl struct {
	recruitmentService recruitment.RecruitmentService
}

func NewRecruitmentHandler(recruitmentService recruitment.RecruitmentService) RecruitmentHandler {
	return &RecruitmentHandlerImpl{recruitmentService: recruitmentService}
}

func (h *RecruitmentHandlerImpl) CreateOpening(w http.ResponseWriter, r *http.Request) {
	var req recruitment.CreateJobOpeningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.recruitmentService.CreateOpening(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Job opening created", recruitment.ToOpeningResponse(created))
}

func (h *RecruitmentHandlerImpl) UpdateOpening(w http.ResponseWriter, r *http.Request) {
	var req recruitment.UpdateJobOpeningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.recruitmentService.UpdateOpening(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, recruitment.ToOpeningResponse(updated))
}

func (h *RecruitmentHandlerImpl) ListOpenings(w http.ResponseWriter, r *http.Request) {
	openings, err := h.recruitmentService.ListOpenings(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]recruitment.JobOpeningResponse, 0, len(openings))
	for _, o := range openings {
		items = append(items, recruitment.ToOpeningResponse(o))
	}
	response.Success(w, items)
}

func (h *RecruitmentHandlerImpl) CreateApplicant(w http.ResponseWriter, r *http.Request) {
	var req recruitment.CreateApplicantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.recruitmentService.CreateApplicant(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Applicant created", recruitment.ToApplicantResponse(created))
}

func (h *RecruitmentHandlerImpl) ListApplicants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	filter := recruitment.ApplicantListFilter{
		JobOpeningID: q.Get("job_opening_id"),
		Status:       q.Get("status"),
		Search:       q.Get("search"),
		Page:         page,
		Limit:        limit,
	}
	filter.Normalize()

	applicants, total, err := h.recruitmentService.ListApplicants(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]recruitment.ApplicantResponse, 0, len(applicants))
	for _, a := range applicants {
		items = append(items, recruitment.ToApplicantResponse(a))
	}
	response.SuccessWithMeta(w, items, response.NewMeta(filter.Page, filter.Limit, total))
}

func (h *RecruitmentHandlerImpl) UpdateApplicantStatus(w http.ResponseWriter, r *http.Request) {
	var req recruitment.UpdateApplicantStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ApplicantID = chi.URLParam(r, "id")

	updated, err := h.recruitmentService.UpdateApplicantStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, recruitment.ToApplicantResponse(updated))
}

func (h *RecruitmentHandlerImpl) Hire(w http.ResponseWriter, r *http.Request) {
	var req recruitment.HireApplicantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ApplicantID = chi.URLParam(r, "id")

	hired, err := h.recruitmentService.Hire(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Applicant hired", employee.ToResponse(hired))
}

func (h *RecruitmentHandlerImpl) ScheduleInterview(w http.ResponseWriter, r *http.Request) {
	var req recruitment.ScheduleInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ApplicantID = chi.URLParam(r, "id")

	created, err := h.recruitmentService.ScheduleInterview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Interview scheduled", recruitment.ToInterviewResponse(created))
}

func (h *RecruitmentHandlerImpl) ListInterviews(w http.ResponseWriter, r *http.Request) {
	interviews, err := h.recruitmentService.ListInterviews(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]recruitment.InterviewResponse, 0, len(interviews))
	for _, iv := range interviews {
		items = append(items, recruitment.ToInterviewResponse(iv))
	}
	response.Success(w, items)
}
