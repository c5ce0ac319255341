package render

// pageTemplate is the full portfolio document. Fragments it embeds are
// defined in fragmentTemplates so handlers can render them alone.
const pageTemplate = `{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.CSS}}">
  <script src="https://unpkg.com/htmx.org@1.9.12"></script>
  {{if .LiveURL}}<script src="https://unpkg.com/htmx.org@1.9.12/dist/ext/ws.js"></script>{{end}}
</head>
<body>
  {{if .LiveURL}}<div id="live" hx-ext="ws" ws-connect="{{.LiveURL}}"></div>{{end}}
  {{template "welcome" .Welcome}}
  <div id="main" class="main">
    <div class="particles" aria-hidden="true">
      {{range .Background}}<span class="particle" style="{{.Style}}"></span>{{end}}
    </div>
    <header class="header">
      {{template "nav" .Nav}}
      {{template "menu" .Menu}}
    </header>

    <section id="hero" class="section hero">
      {{with .Portfolio.Profile}}
      {{if .Portrait}}<img class="portrait" src="{{asset .Portrait}}" alt="{{.Name}}">{{end}}
      <h1>{{.Name}}</h1>
      <p class="headline">{{.Headline}}</p>
      <p class="tagline">{{.Tagline}}</p>
      {{if .Location}}<p class="location">{{.Location}}</p>{{end}}
      {{end}}
      <div class="stats">
        {{range .Portfolio.Stats}}<div class="stat"><strong>{{.Value}}</strong><span>{{.Label}}</span></div>{{end}}
      </div>
    </section>

    <section id="about" class="section">
      <h2>About Me</h2>
      <div class="bio">{{.Bio}}</div>
      <div class="cards">
        {{range .Portfolio.Highlights}}
        <div class="card" data-color="{{.Color}}">
          <h3>{{.Title}}</h3>
          <p>{{.Description}}</p>
        </div>
        {{end}}
      </div>
    </section>

    <section id="skills" class="section">
      <h2>Skills</h2>
      <div class="cards">
        {{range .Portfolio.Skills}}
        <div class="card" data-color="{{.Color}}">
          <h3>{{.Name}}</h3>
          <ul class="tools">
            {{range .Items}}<li>{{if .Logo}}<img src="{{asset .Logo}}" alt="" loading="lazy">{{end}}{{.Name}}</li>{{end}}
          </ul>
        </div>
        {{end}}
      </div>
    </section>

    <section id="certifications" class="section">
      <h2>Certifications</h2>
      <div class="cards">
        {{range .Portfolio.Certifications}}
        <div class="card cert" data-color="{{.Color}}">
          {{if .Logo}}<img class="cert-logo" src="{{asset .Logo}}" alt="{{.Issuer}}">{{end}}
          <h3>{{.Name}}</h3>
          <p class="meta">{{if .Code}}{{.Code}} · {{end}}{{.Issuer}}{{if .Date}} · {{.Date}}{{end}}</p>
          <p>{{.Description}}</p>
          <div class="tags">{{range .Skills}}<span class="tag">{{.}}</span>{{end}}</div>
          {{if .CredentialURL}}<a class="verify" href="{{.CredentialURL}}" target="_blank" rel="noopener">Verify credential</a>{{end}}
        </div>
        {{end}}
      </div>
      {{if .Portfolio.Upcoming}}
      <div class="upcoming">
        <h3>Next Certifications</h3>
        <div class="tags">{{range .Portfolio.Upcoming}}<span class="tag">{{.}}</span>{{end}}</div>
      </div>
      {{end}}
    </section>

    <section id="experience" class="section">
      <h2>Education &amp; Experience</h2>
      <div class="timeline">
        {{range .Portfolio.Education}}
        <article class="entry" data-color="{{.Color}}">
          <h3>{{.Degree}}</h3>
          <p class="meta">{{.Institution}} · {{.Period}}{{if .Location}} · {{.Location}}{{end}}</p>
          <p>{{.Description}}</p>
          {{if .Courses}}<ul>{{range .Courses}}<li>{{.}}</li>{{end}}</ul>{{end}}
          <div class="tags">{{range .Skills}}<span class="tag">{{.}}</span>{{end}}</div>
        </article>
        {{end}}
        {{range .Portfolio.Experience}}
        <article class="entry">
          <h3>{{.Title}}</h3>
          <p class="meta">{{.Company}} · {{.Period}}{{if .Location}} · {{.Location}}{{end}}</p>
          <p>{{.Description}}</p>
          {{if .Achievements}}<ul>{{range .Achievements}}<li>{{.}}</li>{{end}}</ul>{{end}}
          <div class="tags">{{range .Technologies}}<span class="tag">{{.}}</span>{{end}}</div>
        </article>
        {{end}}
      </div>
    </section>

    <section id="projects" class="section">
      <h2>Projects</h2>
      <div class="cards">
        {{range .Projects}}
        <article class="card project{{if .Featured}} featured{{end}}">
          <button type="button" class="cover" {{.Open}} hx-target="#gallery" hx-swap="outerHTML">
            <img src="{{asset (index .Images 0)}}" alt="{{.Title}}" loading="lazy">
            <span class="count">{{len .Images}} images</span>
          </button>
          <h3>{{.Title}}</h3>
          <p>{{.Description}}</p>
          <div class="tags">{{range .Tech}}<span class="tag">{{.}}</span>{{end}}</div>
          {{if .Metrics}}
          <dl class="metrics">
            {{range .Metrics}}<div><dt>{{.Label}}</dt><dd>{{.Value}}</dd></div>{{end}}
          </dl>
          {{end}}
        </article>
        {{end}}
      </div>
    </section>

    <section id="contact" class="section">
      <h2>Contact</h2>
      {{with .Portfolio.Contact}}
      {{if .Intro}}<p>{{.Intro}}</p>{{end}}
      <ul class="contact">
        {{range .Methods}}<li><span>{{.Label}}</span>{{if .Href}}<a href="{{.Href}}">{{.Value}}</a>{{else}}{{.Value}}{{end}}</li>{{end}}
      </ul>
      <div class="socials">
        {{range .Socials}}<a href="{{.Href}}" target="_blank" rel="noopener">{{.Label}}</a>{{end}}
      </div>
      {{end}}
    </section>

    <footer class="footer"><a href="{{.Root}}">{{.Portfolio.Profile.Name}}</a></footer>
  </div>
  {{template "gallery" .Gallery}}
  <script src="{{.JS}}"></script>
</body>
</html>{{end}}`

// fragmentTemplates are the pieces htmx swaps. Each renders a single root
// element whose id matches its swap target.
const fragmentTemplates = `
{{define "nav"}}<nav id="nav" class="nav"{{if .ScrollURL}} data-scroll-url="{{.ScrollURL}}"{{end}}>
  <a class="brand" href="{{.Root}}">{{.Name}}</a>
  <ul>
    {{range .Links}}<li><a href="#{{.ID}}"{{if .Active}} class="active" aria-current="true"{{end}}>{{.Label}}</a></li>{{end}}
  </ul>
</nav>{{end}}

{{define "menu"}}<div id="menu" class="menu{{if .Open}} open{{end}}">
  <button type="button" class="menu-toggle" aria-label="Toggle menu" aria-expanded="{{.Open}}" {{.Toggle}} hx-target="#menu" hx-swap="outerHTML">
    <span></span><span></span><span></span>
  </button>
  {{if .Open}}
  <ul class="menu-links">
    {{range .Links}}<li><a href="#{{.ID}}" {{.Navigate}} hx-target="#menu" hx-swap="outerHTML">{{.Label}}</a></li>{{end}}
  </ul>
  {{end}}
</div>{{end}}

{{define "gallery"}}{{if .Open}}<div id="gallery" class="gallery" role="dialog" aria-modal="true" aria-label="{{.Project.Title}}">
  <div class="gallery-backdrop" {{.Close}} hx-target="#gallery" hx-swap="outerHTML"></div>
  <div class="gallery-body">
    <button type="button" class="gallery-close" aria-label="Close" {{.Close}} hx-target="#gallery" hx-swap="outerHTML">&times;</button>
    <figure>
      <img src="{{asset .Image}}" alt="{{.Project.Title}} {{.Number}} of {{.Count}}">
      <figcaption>{{.Number}} / {{.Count}}</figcaption>
    </figure>
    {{if gt .Count 1}}
    <button type="button" class="gallery-prev" aria-label="Previous image" {{.Prev}} hx-target="#gallery" hx-swap="outerHTML">&lsaquo;</button>
    <button type="button" class="gallery-next" aria-label="Next image" {{.Next}} hx-target="#gallery" hx-swap="outerHTML">&rsaquo;</button>
    <div class="gallery-dots">
      {{range .Jumps}}<button type="button" aria-label="Image {{.Number}}"{{if .Current}} class="current"{{end}} {{.Jump}} hx-target="#gallery" hx-swap="outerHTML"></button>{{end}}
    </div>
    {{end}}
    <div class="gallery-text">
      <h3>{{.Project.Title}}</h3>
      {{.Summary}}
      <div class="tags">{{range .Project.Tech}}<span class="tag">{{.}}</span>{{end}}</div>
    </div>
  </div>
</div>{{else}}<div id="gallery" class="gallery-slot"></div>{{end}}{{end}}

{{define "welcome"}}<div id="welcome" class="welcome {{.Phase}}"{{if .OOB}} hx-swap-oob="true"{{end}}{{if .Next}} {{.Next}} hx-trigger="load delay:{{.Delay}}" hx-swap="outerHTML"{{end}}>
  {{if not .Hidden}}
  <div class="particles" aria-hidden="true">
    {{range .Particles}}<span class="particle" style="{{.Style}}"></span>{{end}}
  </div>
  <div class="welcome-text">
    <p>Welcome</p>
    <h1>{{.Name}}</h1>
    <p>{{.Headline}}</p>
  </div>
  {{end}}
</div>{{end}}
`

// cssContent is the stylesheet for the page. The main content enters once
// the welcome splash is hidden.
const cssContent = `:root {
  --bg: #0b1120;
  --bg-card: #111a2e;
  --text: #e2e8f0;
  --text-muted: #94a3b8;
  --accent: #38bdf8;
  --accent-2: #818cf8;
  --border: #1e293b;
  --header-height: 72px;
}

* { box-sizing: border-box; }

html { scroll-behavior: smooth; scroll-padding-top: var(--header-height); }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.6;
}

a { color: var(--accent); text-decoration: none; }

/* Welcome splash */
.welcome {
  position: fixed;
  inset: 0;
  z-index: 100;
  display: flex;
  align-items: center;
  justify-content: center;
  background: linear-gradient(135deg, #0f172a, #1e1b4b);
  transition: opacity 1s ease;
}
.welcome.fading { opacity: 0; }
.welcome.hidden { display: none; }
.welcome-text { text-align: center; position: relative; }
.welcome-text h1 { font-size: 3rem; margin: 0.25rem 0; }

.main {
  opacity: 0;
  transform: translateY(20px);
  transition: opacity 0.8s ease, transform 0.8s ease;
}
.welcome.hidden ~ .main { opacity: 1; transform: none; }

/* Particles */
.particles { position: absolute; inset: 0; overflow: hidden; pointer-events: none; }
.main > .particles { position: fixed; z-index: -1; }
.particle {
  position: absolute;
  width: 4px;
  height: 4px;
  border-radius: 50%;
  background: var(--accent);
  opacity: 0.4;
  animation-name: float;
  animation-iteration-count: infinite;
  animation-timing-function: ease-in-out;
}
@keyframes float {
  0%, 100% { transform: translateY(0); opacity: 0.2; }
  50% { transform: translateY(-20px); opacity: 0.8; }
}

/* Header */
.header {
  position: sticky;
  top: 0;
  z-index: 50;
  height: var(--header-height);
  background: rgba(11, 17, 32, 0.85);
  backdrop-filter: blur(8px);
  border-bottom: 1px solid var(--border);
}
.nav {
  max-width: 1100px;
  height: 100%;
  margin: 0 auto;
  padding: 0 1.5rem;
  display: flex;
  align-items: center;
  justify-content: space-between;
}
.nav .brand { font-weight: 700; color: var(--text); }
.nav ul { list-style: none; display: flex; gap: 1.25rem; margin: 0; padding: 0; }
.nav ul a { color: var(--text-muted); transition: color 0.2s; }
.nav ul a.active, .nav ul a:hover { color: var(--accent); }

.menu { display: none; }
.menu-toggle { background: none; border: 0; padding: 0.5rem; cursor: pointer; }
.menu-toggle span { display: block; width: 22px; height: 2px; margin: 4px 0; background: var(--text); }
.menu-links { list-style: none; margin: 0; padding: 1rem 1.5rem; background: var(--bg-card); }
.menu-links li { padding: 0.5rem 0; }

@media (max-width: 768px) {
  .nav ul { display: none; }
  .menu { display: block; position: absolute; top: 12px; right: 1rem; }
  .menu.open { top: var(--header-height); left: 0; right: 0; }
  .menu.open .menu-toggle { position: absolute; top: calc(12px - var(--header-height)); right: 1rem; }
}

/* Sections */
.section { max-width: 1100px; margin: 0 auto; padding: 5rem 1.5rem; }
.section h2 { font-size: 2rem; margin-top: 0; }
.hero { text-align: center; min-height: 90vh; display: flex; flex-direction: column; justify-content: center; align-items: center; }
.hero h1 { font-size: 3rem; margin: 0.5rem 0; }
.portrait { width: 180px; height: 180px; border-radius: 50%; object-fit: cover; border: 3px solid var(--accent); }
.headline { font-size: 1.4rem; color: var(--accent); margin: 0; }
.tagline, .location, .meta { color: var(--text-muted); }
.stats { display: flex; flex-wrap: wrap; gap: 2rem; justify-content: center; margin-top: 2rem; }
.stat strong { display: block; font-size: 2rem; color: var(--accent-2); }

.cards { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 1.5rem; }
.card {
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: 12px;
  padding: 1.5rem;
}
.card h3 { margin-top: 0; }
.tools { list-style: none; padding: 0; display: flex; flex-wrap: wrap; gap: 0.5rem; }
.tools li { display: flex; align-items: center; gap: 0.35rem; padding: 0.25rem 0.6rem; border-radius: 6px; background: var(--bg); font-size: 0.9rem; }
.tools img { width: 20px; height: 20px; object-fit: contain; }
.cert-logo { height: 48px; }
.tags { display: flex; flex-wrap: wrap; gap: 0.4rem; margin-top: 0.75rem; }
.tag { font-size: 0.8rem; padding: 0.15rem 0.6rem; border-radius: 999px; background: rgba(56, 189, 248, 0.12); color: var(--accent); }
.upcoming { margin-top: 2rem; }

.timeline { display: flex; flex-direction: column; gap: 1.5rem; border-left: 2px solid var(--border); padding-left: 1.5rem; }
.entry h3 { margin: 0; }

.project .cover { position: relative; display: block; width: 100%; padding: 0; border: 0; background: none; cursor: pointer; }
.project .cover img { width: 100%; height: 200px; object-fit: cover; border-radius: 8px; }
.project .count { position: absolute; right: 0.5rem; bottom: 0.5rem; font-size: 0.75rem; padding: 0.1rem 0.5rem; border-radius: 999px; background: rgba(0, 0, 0, 0.6); color: #fff; }
.project.featured { border-color: var(--accent-2); }
.metrics { display: grid; grid-template-columns: repeat(2, 1fr); gap: 0.5rem; margin: 1rem 0 0; }
.metrics dt { font-size: 0.75rem; color: var(--text-muted); }
.metrics dd { margin: 0; font-weight: 700; color: var(--accent-2); }

.contact { list-style: none; padding: 0; }
.contact li { display: flex; gap: 1rem; padding: 0.4rem 0; }
.contact li span { min-width: 90px; color: var(--text-muted); }
.socials { display: flex; gap: 1rem; }
.footer { text-align: center; padding: 2rem; border-top: 1px solid var(--border); }

/* Gallery modal */
.gallery { position: fixed; inset: 0; z-index: 80; display: flex; align-items: center; justify-content: center; }
.gallery-backdrop { position: absolute; inset: 0; background: rgba(0, 0, 0, 0.85); cursor: pointer; }
.gallery-body { position: relative; width: min(960px, 92vw); max-height: 92vh; overflow: auto; background: var(--bg-card); border-radius: 12px; padding: 1.5rem; }
.gallery figure { margin: 0; text-align: center; }
.gallery figure img { max-width: 100%; max-height: 60vh; border-radius: 8px; }
.gallery figcaption { color: var(--text-muted); font-size: 0.85rem; }
.gallery-close { position: absolute; top: 0.5rem; right: 0.75rem; font-size: 1.75rem; background: none; border: 0; color: var(--text); cursor: pointer; }
.gallery-prev, .gallery-next { position: absolute; top: 35%; font-size: 2.5rem; background: none; border: 0; color: var(--text); cursor: pointer; }
.gallery-prev { left: 0.5rem; }
.gallery-next { right: 0.5rem; }
.gallery-dots { display: flex; justify-content: center; gap: 0.4rem; margin: 0.75rem 0; }
.gallery-dots button { width: 10px; height: 10px; border-radius: 50%; border: 0; background: var(--border); cursor: pointer; }
.gallery-dots button.current { background: var(--accent); }
`

// jsContent reports scroll position and section layout to the live server
// and wires keyboard navigation for the gallery. htmx does the swapping.
const jsContent = `(function() {
  'use strict';

  function layout() {
    var parts = [];
    document.querySelectorAll('section[id]').forEach(function(el) {
      parts.push(el.id + ':' + el.offsetTop + ':' + el.offsetHeight);
    });
    return parts.join(',');
  }

  function report() {
    var nav = document.getElementById('nav');
    if (!nav || !nav.dataset.scrollUrl || !window.htmx) return;
    htmx.ajax('POST', nav.dataset.scrollUrl, {
      target: '#nav',
      swap: 'outerHTML',
      values: { y: String(window.scrollY), layout: layout() }
    });
  }

  window.addEventListener('scroll', report, { passive: true });
  window.addEventListener('load', report);

  // A view the server no longer knows about needs a fresh page.
  document.body.addEventListener('htmx:responseError', function(evt) {
    if (evt.detail.xhr && evt.detail.xhr.status === 404 &&
        evt.detail.requestConfig.path.indexOf('/views/') !== -1) {
      window.location.reload();
    }
  });

  document.addEventListener('keydown', function(evt) {
    var gallery = document.querySelector('#gallery.gallery');
    if (!gallery) return;
    var selector = null;
    if (evt.key === 'Escape') selector = '.gallery-close';
    if (evt.key === 'ArrowRight') selector = '.gallery-next';
    if (evt.key === 'ArrowLeft') selector = '.gallery-prev';
    if (!selector) return;
    var btn = gallery.querySelector(selector);
    if (btn) btn.click();
  });
})();
`
