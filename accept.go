package ember

import (
	"net"
)

// Serve implements spec.md §4.6's accept loop: bind is already done by Run/
// RunTLS, so Serve just loops on Accept, spawning a goroutine per connection
// with a snapshot of the current route/middleware tables, until Cancel
// closes the listener out from under it.
func (s *Server) Serve(ln net.Listener) error {
	defer ln.Close()

	go func() {
		<-s.cancelCh
		ln.Close()
	}()

	var sem chan struct{}
	if s.config.MaxConcurrentConnections > 0 {
		sem = make(chan struct{}, s.config.MaxConcurrentConnections)
	}

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-s.cancelCh:
				s.wg.Wait()
				return nil
			default:
				return err
			}
		}

		routes, mws, ok := s.snapshotTables()
		if !ok {
			conn.Close()
			continue
		}

		if sem != nil {
			select {
			case sem <- struct{}{}:
			case <-s.cancelCh:
				conn.Close()
				continue
			}
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			if sem != nil {
				defer func() { <-sem }()
			}
			s.serveConnection(conn, routes, mws)
		}()
	}
}
