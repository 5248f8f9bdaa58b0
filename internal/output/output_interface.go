// Package output delivers rendered previews to their sinks.
package output

import (
	"image"
	"sync"

	"widgetconfig/internal/logging"
)

// Frame is one encoded preview of a widget instance. Key is the
// "<variant>/<id>" pair the preview belongs to.
type Frame struct {
	Key   string
	Image image.Image
	PNG   []byte
}

type OutputHandler interface {
	Output(frame *Frame) error
	Close() error
	GetType() string
}

// OutputManager encodes a preview once and hands it to every handler.
type OutputManager struct {
	mutex    sync.RWMutex
	handlers []OutputHandler
}

func NewOutputManager(handlers ...OutputHandler) *OutputManager {
	return &OutputManager{handlers: handlers}
}

func (om *OutputManager) AddHandler(handler OutputHandler) {
	om.mutex.Lock()
	defer om.mutex.Unlock()
	om.handlers = append(om.handlers, handler)
}

func (om *OutputManager) Len() int {
	om.mutex.RLock()
	defer om.mutex.RUnlock()
	return len(om.handlers)
}

// Output delivers img for key. It fails only when every handler failed;
// the encoded frame is returned either way so callers can reuse the PNG.
func (om *OutputManager) Output(key string, img image.Image) (*Frame, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return nil, err
	}
	frame := &Frame{Key: key, Image: img, PNG: data}

	om.mutex.RLock()
	handlers := append([]OutputHandler(nil), om.handlers...)
	om.mutex.RUnlock()

	var lastErr error
	delivered := 0
	for _, handler := range handlers {
		if err := handler.Output(frame); err != nil {
			logging.WarnModule("output", "%s failed for %s: %v", handler.GetType(), key, err)
			lastErr = err
			continue
		}
		delivered++
	}

	if delivered == 0 && lastErr != nil {
		return frame, lastErr
	}
	return frame, nil
}

func (om *OutputManager) Close() {
	om.mutex.Lock()
	defer om.mutex.Unlock()
	for _, handler := range om.handlers {
		if err := handler.Close(); err != nil {
			logging.WarnModule("output", "%s close failed: %v", handler.GetType(), err)
		}
	}
	om.handlers = nil
}
