// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/swhelan123/mp3wav/utils"
)

// Collect16 drains src and returns its samples as interleaved 16-bit
// PCM. bufferSize controls how many float32 samples are read per call
// (e.g. 4096); larger buffers trade memory for fewer read calls.
//
// The source is read to completion; io.EOF is consumed and not
// returned to the caller.
func Collect16(src Source, bufferSize int) ([]int16, error) {
	var pcm16 []int16
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			if cap(pcm16)-len(pcm16) < n {
				grown := make([]int16, len(pcm16), len(pcm16)+max(n, cap(pcm16)))
				copy(grown, pcm16)
				pcm16 = grown
			}

			start := len(pcm16)
			pcm16 = pcm16[:start+n]
			for i := 0; i < n; i++ {
				pcm16[start+i] = utils.Float32ToInt16(buf[i])
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return pcm16, nil
}
