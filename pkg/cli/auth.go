// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	apperrors "github.com/mchmarny/recipe-printer/pkg/errors"
)

// resolveAuth checks that exactly one credential kind is configured and
// prompts for a missing password. It runs before any network activity.
func resolveAuth(ctx context.Context, o *options, prompt func(context.Context, string) (string, error)) error {
	hasToken := strings.TrimSpace(o.token) != ""
	hasUser := strings.TrimSpace(o.username) != ""

	switch {
	case hasToken && hasUser:
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "--token and --username are mutually exclusive")
	case !hasToken && !hasUser:
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "either --token or --username is required")
	case hasToken:
		return nil
	}

	if o.password != "" {
		return nil
	}
	if prompt == nil {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "password is required for --username")
	}

	password, err := prompt(ctx, o.username)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, "failed to read password", err)
	}
	if password == "" {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "password is required for --username")
	}
	o.password = password
	return nil
}

// surveyPassword prompts for a password on the terminal without echo.
func surveyPassword(ctx context.Context, username string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var out string
	prompt := &survey.Password{
		Message: fmt.Sprintf("Tandoor password for %s:", username),
	}
	if err := survey.AskOne(prompt, &out, survey.WithStdio(os.Stdin, os.Stderr, os.Stderr)); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", context.Canceled
		}
		return "", err
	}
	return out, nil
}
