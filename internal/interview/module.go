package interview

type Module struct {
	Svc InterviewService
	Hdl *Handler
}
