package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/vibecode/internal/interview/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	interviewFinishedResult = ginx.Result{
		Code: errs.InterviewFinished.Code,
		Msg:  errs.InterviewFinished.Msg,
	}
)
