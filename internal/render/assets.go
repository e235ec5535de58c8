package render

const pageStyle = `    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #0f0f23 0%, #1a1a3e 100%);
            color: #e0e0e0;
            min-height: 100vh;
            padding: 20px;
        }
        .container { max-width: 1100px; margin: 0 auto; }
        header { text-align: center; margin-bottom: 24px; }
        header h1 {
            font-size: 2.2em;
            background: linear-gradient(90deg, #00d9ff, #00ff88);
            -webkit-background-clip: text;
            -webkit-text-fill-color: transparent;
        }
        .date { color: #888; margin-top: 6px; }
        .tabs { display: flex; gap: 8px; margin-bottom: 20px; justify-content: center; }
        .tab-btn {
            background: rgba(255,255,255,0.05);
            border: 1px solid rgba(0,217,255,0.25);
            color: #e0e0e0;
            padding: 8px 28px;
            border-radius: 8px;
            cursor: pointer;
            font-size: 1em;
        }
        .tab-btn.active { background: rgba(0,217,255,0.18); border-color: #00d9ff; }
        .tab-content { display: none; }
        .tab-content.active { display: block; }
        .section {
            background: rgba(255,255,255,0.04);
            border: 1px solid rgba(0,217,255,0.15);
            border-radius: 12px;
            padding: 20px;
            margin-bottom: 20px;
        }
        .section h2 { color: #00d9ff; font-size: 1.2em; margin-bottom: 14px; }
        .section-empty, .cabinet-empty { color: #888; font-style: italic; padding: 8px 0; }
        .quote-box { text-align: center; padding: 10px; }
        .quote-text { font-size: 1.15em; font-style: italic; color: #fff; }
        .quote-author { color: #00ff88; margin-top: 8px; }
        .metric-cards { display: flex; gap: 16px; flex-wrap: wrap; margin-bottom: 20px; }
        .metric-card {
            flex: 1;
            min-width: 260px;
            background: rgba(0,0,0,0.25);
            border-radius: 10px;
            padding: 16px;
            text-align: center;
        }
        .metric-main { font-size: 2em; color: #00ff88; font-weight: bold; }
        .metric-deact { color: #ff6b6b; }
        .metric-label { color: #888; font-size: 0.85em; margin: 6px 0 10px; }
        .streak { display: flex; justify-content: center; gap: 10px; }
        .streak-day { text-align: center; }
        .streak-val { font-size: 0.9em; font-weight: bold; }
        .streak-val.positive { color: #00ff88; }
        .streak-val.negative { color: #ff6b6b; }
        .streak-label { font-size: 0.7em; color: #666; }
        .chart-container { overflow-x: auto; padding-bottom: 4px; }
        .chart { display: flex; align-items: flex-end; gap: 6px; height: 210px; min-width: 600px; }
        .chart-bar-group { flex: 1; display: flex; flex-direction: column; align-items: center; }
        .chart-bars { display: flex; align-items: flex-end; gap: 2px; height: 184px; }
        .chart-bar { width: 9px; border-radius: 2px 2px 0 0; }
        .chart-bar.fiziska { background: #00d9ff; }
        .chart-bar.juridiska { background: #00ff88; }
        .chart-label {
            font-size: 0.6em;
            color: #666;
            margin-top: 4px;
            writing-mode: vertical-rl;
            max-height: 40px;
            overflow: hidden;
        }
        .chart-legend { display: flex; gap: 20px; justify-content: center; margin-top: 8px; color: #aaa; font-size: 0.85em; }
        .legend-dot { display: inline-block; width: 10px; height: 10px; border-radius: 50%; margin-right: 6px; }
        .news-row { display: flex; gap: 20px; flex-wrap: wrap; }
        .news-row .section { flex: 1; min-width: 320px; }
        .news-item { padding: 8px 0; border-bottom: 1px solid rgba(255,255,255,0.06); }
        .news-item:last-child { border-bottom: none; }
        .news-item a { color: #e0e0e0; text-decoration: none; }
        .news-item a:hover { color: #00d9ff; }
        .cabinet-meeting-info { color: #aaa; margin-bottom: 14px; }
        .cabinet-meeting-info a { color: #00d9ff; }
        .cabinet-section-name {
            color: #00ff88;
            font-weight: bold;
            font-size: 0.9em;
            text-transform: uppercase;
            margin: 14px 0 6px;
        }
        .cabinet-item-wrapper { margin-bottom: 6px; }
        .cabinet-item { padding: 6px 8px; border-radius: 6px; }
        .cabinet-item a { color: #e0e0e0; text-decoration: none; }
        .cabinet-item a:hover { color: #00d9ff; }
        .cabinet-toggle { cursor: pointer; background: rgba(0,0,0,0.2); }
        .toggle-arrow { color: #00d9ff; font-size: 0.7em; margin-right: 6px; display: inline-block; transition: transform 0.15s; }
        .cabinet-toggle.open .toggle-arrow { transform: rotate(90deg); }
        .cabinet-ta-id { color: #00ff88; font-family: monospace; margin-right: 8px; }
        .cabinet-summary {
            display: none;
            background: rgba(0,0,0,0.3);
            border-left: 2px solid #00d9ff;
            margin: 4px 0 4px 14px;
            padding: 10px 14px;
            border-radius: 0 6px 6px 0;
        }
        .cabinet-summary.open { display: block; }
        .summary-label { color: #00d9ff; font-size: 0.8em; text-transform: uppercase; margin-bottom: 4px; }
        .summary-text, .summary-decision { color: #ccc; font-size: 0.92em; margin-bottom: 10px; line-height: 1.5; }
        .parl-week-range { color: #aaa; margin-bottom: 12px; }
        .parl-group-header { margin: 14px 0 6px; color: #00ff88; font-size: 0.92em; }
        .parl-date { font-weight: bold; }
        .parl-item { padding: 6px 8px 6px 16px; }
        .parl-item a { color: #e0e0e0; text-decoration: none; }
        .parl-item a:hover { color: #00d9ff; }
        .parl-match-badge {
            font-size: 0.68em;
            padding: 2px 8px;
            border-radius: 10px;
            margin-left: 8px;
            background: rgba(0,217,255,0.2);
            color: #00d9ff;
        }
        .parl-match-badge.content { background: rgba(0,255,136,0.15); color: #00ff88; }
        footer { text-align: center; color: #555; margin-top: 20px; font-size: 0.85em; }
    </style>
`

const pageScript = `    <script>
        function switchTab(name) {
            document.querySelectorAll('.tab-content').forEach(function (el) {
                el.classList.remove('active');
            });
            document.querySelectorAll('.tab-btn').forEach(function (el) {
                el.classList.remove('active');
            });
            document.getElementById('tab-' + name).classList.add('active');
            event.target.classList.add('active');
        }
        function toggleSummary(id) {
            var el = document.getElementById(id);
            if (!el) return;
            el.classList.toggle('open');
            var toggle = el.parentElement.querySelector('.cabinet-toggle');
            if (toggle) toggle.classList.toggle('open');
        }
    </script>
`
