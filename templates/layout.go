package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// toastScript shows toasts raised through the HX-Trigger header and through
// the flash_toast cookie left by plain redirects.
const toastScript = `
function showToast(t){var box=document.getElementById('toasts');if(!box||!t)return;
var d=document.createElement('div');d.className='toast toast-'+(t.type||'info');d.textContent=t.message;
box.appendChild(d);setTimeout(function(){d.remove()},4000);}
document.body.addEventListener('showToast',function(e){showToast(e.detail)});
(function(){var m=document.cookie.match(/(?:^|; )flash_toast=([^;]*)/);if(!m)return;
document.cookie='flash_toast=; Max-Age=0; path=/';try{showToast(JSON.parse(decodeURIComponent(m[1]).replace(/\+/g,' ')))}catch(e){}})();
`

const pageStyle = `
body{font-family:system-ui,sans-serif;margin:0;padding:1.5rem;background:#fafafa;color:#212529}
h1{margin-top:0}fieldset{border:0;padding:0;display:grid;grid-template-columns:repeat(3,1fr);gap:.75rem 1.5rem}
label{display:flex;flex-direction:column;font-size:.8rem;font-weight:600;text-transform:uppercase}
input,select{font-size:1rem;padding:.35rem;margin-top:.2rem}.field-error{color:#b02a37;font-size:.75rem;text-transform:none}
table{border-collapse:collapse;width:100%;margin-top:1rem;font-size:.85rem}
th{background:#808080;color:#f5f5f5}th,td{border:1px solid #000;padding:.3rem;text-align:center}
tbody tr:nth-child(odd){background:#f5f5f5}tbody tr:nth-child(even){background:#d3d3d3}
tr.editing{outline:2px solid #0d6efd}.actions{display:flex;gap:1rem;margin:1rem 0}
#toasts{position:fixed;top:1rem;right:1rem}.toast{padding:.6rem 1rem;margin-bottom:.5rem;border-radius:4px;color:#fff}
.toast-success{background:#198754}.toast-error{background:#b02a37}.toast-info{background:#0d6efd}.toast-warning{background:#e0a800}
`

// Page wraps body in the full HTML document.
func Page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title><script src="/static/htmx.min.js"></script><style>`)
		h.raw(pageStyle)
		h.raw(`</style></head><body><div id="toasts"></div><main id="main-content">`)
		if h.err != nil {
			return h.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</main><script>`)
		h.raw(toastScript)
		h.raw(`</script></body></html>`)
		return h.err
	})
}
