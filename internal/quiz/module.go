package quiz

type Module struct {
	Svc QuizService
	Hdl *Handler
}
