// Package http writes the JSON envelope shared by the demo endpoints and
// maps container resolution failures onto status codes.
//
//	out := gohttp.NewWriter(w, req)
//	boss, err := container.TryResolve[*game.Boss](rs)
//	if err != nil {
//	    out.Err(err) // 404 for a missing binding, 500 for a cycle
//	    return
//	}
//	out.OK(boss.Logger().Lines())
package http
