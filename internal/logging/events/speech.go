package events

import "github.com/softwatch/astroreview/internal/logging"

type SpeechTracer struct{}

var Speech = SpeechTracer{}

func (SpeechTracer) Utterance(text string, interrupt bool) {
	logging.Trace("speech.utterance", map[string]interface{}{
		"text":      text,
		"interrupt": interrupt,
	})
}

func (SpeechTracer) Suppressed(key string) {
	logging.Trace("speech.suppressed", map[string]interface{}{"key": key})
}
