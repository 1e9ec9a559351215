// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package diffslider

import "log/slog"

// Option configures [ParseFileDiffs].
type Option func(*options)

type options struct {
	log *slog.Logger
}

var defaultOptions = options{}

func (o options) logger() *slog.Logger {
	if o.log == nil {
		return slog.Default()
	}
	return o.log
}

// WithLogger sets the logger that receives one message per recovered [ParsingError].
// The default is [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}
