// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/webnovel/internal/interactive/internal/errs"
	"github.com/ecodeclub/webnovel/internal/interactive/internal/service"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

var bizErrors = []struct {
	err  error
	code errs.ErrorCode
}{
	{err: service.ErrInvalidRating, code: errs.InvalidRating},
	{err: service.ErrStoryNotFound, code: errs.StoryNotFound},
	{err: service.ErrSelfFollow, code: errs.SelfFollow},
	{err: service.ErrAccountNotFound, code: errs.AccountNotFound},
}

func errorResult(err error) ginx.Result {
	for _, be := range bizErrors {
		if errors.Is(err, be.err) {
			return ginx.Result{Code: be.code.Code, Msg: be.code.Msg}
		}
	}
	return systemErrorResult
}
