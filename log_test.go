// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/either"
)

func TestMarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logger.Info().Object("result", either.Left[int, string](12)).Msg("")
	require.Contains(t, buf.String(), `"result":{"side":"left","value":12}`)

	buf.Reset()
	logger.Info().Object("result", either.Right[int]("ok")).Msg("")
	require.Contains(t, buf.String(), `"result":{"side":"right","value":"ok"}`)
}

func TestMarshalZerologObjectStruct(t *testing.T) {
	type payload struct {
		ID int `json:"id"`
	}

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Info().Object("result", either.Right[string](payload{ID: 7})).Msg("")
	require.Contains(t, buf.String(), `"result":{"side":"right","value":{"id":7}}`)
}

func TestMarshalZerologObjectError(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logger.Info().Object("result", either.FromError(0, errors.New("disk full"))).Msg("")
	require.Contains(t, buf.String(), `"result":{"side":"left","value":"disk full"}`)

	buf.Reset()
	logger.Info().Object("result", either.Right[int](errors.New("stale"))).Msg("")
	require.Contains(t, buf.String(), `"result":{"side":"right","value":"stale"}`)
}
