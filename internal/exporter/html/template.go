package html

// APIReportTemplate is the page layout. Each card body is the record's
// rendered Markdown converted to HTML.
const APIReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>API Reference - {{.GeneratedAt}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background: #f5f7fa;
            color: #2c3e50;
            line-height: 1.6;
        }

        .layout { display: flex; max-width: 1400px; margin: 0 auto; }

        nav {
            width: 280px;
            flex-shrink: 0;
            position: sticky;
            top: 0;
            height: 100vh;
            overflow-y: auto;
            padding: 20px 10px;
            border-right: 1px solid #e9ecef;
            background: white;
            font-size: 0.85em;
        }

        nav a { display: block; padding: 4px 8px; color: #495057; text-decoration: none; border-radius: 4px; }
        nav a:hover { background: #f1f3f5; }
        nav a.deprecated { text-decoration: line-through; color: #adb5bd; }

        main { flex: 1; padding: 20px; min-width: 0; }

        header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 32px 20px;
            margin-bottom: 24px;
            border-radius: 8px;
        }

        header h1 { font-size: 2.2em; margin-bottom: 8px; }

        .stats {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(180px, 1fr));
            gap: 15px;
            margin-bottom: 24px;
        }

        .stat-card { background: white; padding: 15px; border-radius: 6px; border-left: 4px solid #667eea; }
        .stat-card .label { font-size: 0.9em; color: #6c757d; }
        .stat-card .value { font-size: 1.8em; font-weight: bold; }

        .endpoint {
            background: white;
            margin-bottom: 20px;
            border-radius: 8px;
            overflow: hidden;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.05);
        }

        .endpoint-header { padding: 16px 20px; background: #f8f9fa; border-bottom: 1px solid #e9ecef; }
        .endpoint-title { display: flex; align-items: center; gap: 15px; }

        .method-badge {
            display: inline-block;
            padding: 4px 10px;
            border-radius: 4px;
            font-weight: bold;
            font-size: 0.85em;
            color: white;
        }

        .method-get { background: #61affe; }
        .method-post { background: #49cc90; }
        .method-put { background: #fca130; }
        .method-delete { background: #f93e3e; }
        .method-patch { background: #50e3c2; }
        .method-default { background: #6c757d; }

        .endpoint-path { font-size: 1.2em; font-weight: 600; font-family: 'Courier New', monospace; }
        .deprecated-badge { background: #adb5bd; color: white; padding: 2px 6px; border-radius: 3px; font-size: 0.75em; }

        .doc { padding: 20px; }
        .doc h1, .doc h2, .doc h3 { margin: 16px 0 8px; color: #495057; }
        .doc h1:first-child, .doc h2:first-child { margin-top: 0; }
        .doc p, .doc ul { margin-bottom: 10px; }
        .doc ul { padding-left: 20px; }
        .doc table { width: 100%; border-collapse: collapse; margin-bottom: 16px; }
        .doc th { background: #f8f9fa; padding: 10px; text-align: left; border-bottom: 2px solid #dee2e6; }
        .doc td { padding: 10px; border-bottom: 1px solid #e9ecef; font-family: 'Courier New', monospace; font-size: 0.9em; }
        .doc pre { background: #2d2d2d; color: #f8f8f2; padding: 12px; border-radius: 6px; overflow-x: auto; margin-bottom: 16px; }
        .doc code { font-family: 'Courier New', monospace; }

        .no-endpoints { text-align: center; padding: 60px 20px; color: #6c757d; }
        footer { text-align: center; padding: 30px 20px; color: #6c757d; }
    </style>
</head>
<body>
<div class="layout">
    <nav>
        {{range .Records}}
        <a href="#{{.ID}}"{{if .Deprecated}} class="deprecated"{{end}}>{{.Title}}</a>
        {{end}}
    </nav>
    <main>
        <header>
            <h1>API Reference</h1>
            <p>Generated on {{.GeneratedAt}}</p>
        </header>

        <div class="stats">
            <div class="stat-card">
                <div class="label">Documented Methods</div>
                <div class="value">{{.TotalMethods}}</div>
            </div>
            <div class="stat-card">
                <div class="label">Classes</div>
                <div class="value">{{.TotalClasses}}</div>
            </div>
            <div class="stat-card">
                <div class="label">Deprecated</div>
                <div class="value">{{.Deprecated}}</div>
            </div>
        </div>

        {{if .Records}}
            {{range .Records}}
            <section class="endpoint" id="{{.ID}}">
                <div class="endpoint-header">
                    <div class="endpoint-title">
                        <span class="method-badge {{methodColor .Method}}">{{methodBadge .Method}}</span>
                        <span class="endpoint-path">{{.URL}}</span>
                        {{if .Deprecated}}<span class="deprecated-badge">DEPRECATED</span>{{end}}
                    </div>
                </div>
                <div class="doc">{{.Body}}</div>
            </section>
            {{end}}
        {{else}}
            <div class="no-endpoints">
                <h3>No documented methods found</h3>
                <p>Only methods with a /** ... */ comment are documented.</p>
            </div>
        {{end}}

        <footer>
            <p>Generated by <strong>dockit</strong></p>
        </footer>
    </main>
</div>
</body>
</html>
`
