package errs

var (
	SystemError       = ErrorCode{Code: 519001, Msg: "系统错误"}
	InvalidTransition = ErrorCode{Code: 519002, Msg: "非法的作答状态流转"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
