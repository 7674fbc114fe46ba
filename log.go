// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import "github.com/rs/zerolog"

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
// It writes the populated side as "side" ("left" or "right") and its value
// as "value":
//
//	log.Info().Object("result", e).Msg("lookup")
//	// {"level":"info","result":{"side":"right","value":42},"message":"lookup"}
//
// A value that implements error is written as its message.
func (e Either[A, B]) MarshalZerologObject(ev *zerolog.Event) {
	Fold(e,
		func(a A) *zerolog.Event { return appendValue(ev.Str("side", "left"), a) },
		func(b B) *zerolog.Event { return appendValue(ev.Str("side", "right"), b) },
	)
}

func appendValue(ev *zerolog.Event, v any) *zerolog.Event {
	if err, ok := v.(error); ok {
		return ev.AnErr("value", err)
	}
	return ev.Interface("value", v)
}
