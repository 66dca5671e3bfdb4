package grading

type Module struct {
	Svc GradeService
	Hdl *Handler
}
