//go:build js && wasm

// Command portfolio-wasm runs the page's view state in the browser. Build it
// with GOOS=js GOARCH=wasm into static/main.wasm.
package main

import (
	"github.com/sirupsen/logrus"

	"github.com/BvspHUB/PortoFabrlio/dom"
	"github.com/BvspHUB/PortoFabrlio/viewstate"
)

func main() {
	doc := dom.New()
	ctrl := viewstate.New(doc, doc, viewstate.ClockScheduler{},
		viewstate.WithDriverOptions(
			viewstate.WithFollowers(doc),
			viewstate.WithCards(doc),
		),
		viewstate.OnChange(doc.Render),
	)
	if err := ctrl.Attach(doc); err != nil {
		logrus.WithError(err).Fatal("attach view state")
	}
	doc.Render(ctrl.Snapshot())

	done := make(chan struct{})
	doc.OnPageHide(func() {
		ctrl.Close()
		close(done)
	})
	<-done
}
