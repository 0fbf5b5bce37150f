package finder

import (
	"github.com/puppetlabs/accfind/acc"
	log "github.com/sirupsen/logrus"
)

// chromeDocument finds the DOCUMENT of a Chrome window and enables its
// descendant objects, which Chrome doesn't build until asked to.
func (st *StatusStore) chromeDocument(w acc.Window, client acc.Object, stats *Stats) (acc.Object, error) {
	doc, err := findDocumentSimple(client, ScopeChrome, stats)
	status := st.Get(w)
	if err != nil {
		switch status {
		case EnableStarted:
			// Out of process the document is sometimes unreachable while enabling
			return nil, ErrWaitRetry
		case EnableNotStarted:
			st.Set(w, EnableStarted)
			triggerEnable(client)
			return nil, ErrWaitRetry
		}
		return nil, err
	}
	if status == EnableYes {
		return doc, nil
	}

	// A disabled DOCUMENT is BUSY until its objects are ready
	ready := false
	if state, err := doc.State(); err == nil && !state.Has(acc.StateBusy) {
		ready = true
	} else if count, err := doc.ChildCount(); err == nil && count > 0 {
		ready = true
	}
	if ready {
		st.Set(w, EnableYes)
		return doc, nil
	}
	st.Set(w, EnableStarted)
	doc.Release()
	triggerEnable(client)
	return nil, ErrWaitRetry
}

// triggerEnable asks the client object for its IAccessible2 service. The query
// fails out of process, but Chrome starts building the objects anyway.
func triggerEnable(client acc.Object) {
	provider, ok := client.(acc.Accessible2Provider)
	if !ok {
		return
	}
	if err := provider.QueryAccessible2(); err != nil {
		log.Debugf("IAccessible2 query failed: %v", err)
	}
}

// ChromeDocument returns the DOCUMENT of Chrome window w, enabling its
// descendant objects if needed. It returns ErrWaitRetry while Chrome builds them.
// The caller must release the returned object.
func (st *StatusStore) ChromeDocument(w acc.Window) (acc.Object, error) {
	client, err := w.Object(acc.ObjectClient)
	if err != nil {
		return nil, err
	}
	defer client.Release()
	return st.chromeDocument(w, client, nil)
}

// EnableInProcess is the enablement routine run by an agent inside the browser
// process. It returns nil once the web page objects are ready.
func (st *StatusStore) EnableInProcess(w acc.Window) error {
	doc, err := st.ChromeDocument(w)
	if err != nil {
		return err
	}
	doc.Release()
	return nil
}
