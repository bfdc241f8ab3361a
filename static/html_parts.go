package static

// The page is written in three parts around the chart and the log of the
// request that produced it.
var (
	Part1 = `
    <!DOCTYPE html>
    <html>
    <head>
        <meta charset="utf-8">
        <title>Bounded Voronoi diagram</title>
		<style>
			body {
				background-color: #1F1F1F;
				color: #d3d3d3;
				font-family: Consolas, monospace;
				overflow: hidden;
			}

			#container {
				display: flex;
				width: 100%;
				height: 100vh;
				box-sizing: border-box;
			}

			#left-container {
				width: 55%;
				padding: 10px;
				box-sizing: border-box;
				overflow-y: auto;
			}

			#right-container {
				width: 45%;
				padding: 10px;
				box-sizing: border-box;
				border-left: 5px solid #757575;
				overflow: auto;
				background-color: #1e1e1e;
			}

			#logs {
				white-space: pre-wrap;
				word-wrap: break-word;
				color: #d3d3d3;
				font-family: Consolas, monospace;
				font-size: 12px;
			}

			fieldset {
				border: 1px solid #444;
				border-radius: 4px;
				margin-bottom: 10px;
			}

			legend, label, h1, h2 {
				color: #d3d3d3;
			}

			.hint {
				color: #8a8a8a;
				font-size: 12px;
				margin: 2px 0 8px 22px;
			}

			input[type="number"],
			input[type="submit"] {
				background-color: #2b2b2b;
				color: #d3d3d3;
				border: 1px solid #444;
				padding: 5px;
				margin: 5px 0;
				border-radius: 4px;
			}

			input[type="submit"]:hover {
				background-color: #444;
				cursor: pointer;
			}

			::-webkit-scrollbar {
				width: 8px;
			}

			::-webkit-scrollbar-thumb {
				background-color: #444;
				border-radius: 10px;
			}

			::-webkit-scrollbar-track {
				background-color: #2b2b2b;
			}
        </style>
    </head>
    <body>
        <div id="container">
            <div id="left-container">
                <h1>Bounded Voronoi diagram</h1>
                <form id="diagram-form" method="POST">
                    <fieldset>
                        <legend>Bounding rectangle</legend>
                        <label for="width">Width:</label>
                        <input type="number" id="width" name="width" value="1000" min="100" max="5000">
                        <label for="height">Height:</label>
                        <input type="number" id="height" name="height" value="1000" min="100" max="5000">
                    </fieldset>
                    <fieldset>
                        <legend>Sites</legend>
                        <label for="stations">Count:</label>
                        <input type="number" id="stations" name="stations" value="12" min="0" max="5000"><br>
                        <input type="checkbox" id="random" name="random" value="true">
                        <label for="random">Random positions</label>
                        <p class="hint">Unchecked: sites sit at the centers of a near-square grid.</p>
                    </fieldset>
                    <fieldset>
                        <legend>Edges</legend>
                        <input type="checkbox" id="border" name="border" value="true">
                        <label for="border">Close cells along the border</label>
                        <p class="hint">Adds the rectangle's sides, split where Voronoi edges reach
                        them, as gray edges owned by the nearest cell. Every cell becomes a
                        closed polygon and border edges join the neighbour graph.</p>
                    </fieldset>
                    <input type="submit" value="Build">
                </form>
    `

	Part2 = `
            </div>
            <div id="right-container">
                <h2>Log</h2>
                <div id="logs">`

	// ErrorPart wraps a message shown instead of the diagram.
	ErrorPart = `<p style="color: #ff6b6b;">%s</p>`

	Part3 = `
                </div>
            </div>
        </div>

        <script>
            document.getElementById('diagram-form').addEventListener('submit', function (e) {
                e.preventDefault();
                const params = new URLSearchParams(new FormData(this)).toString();

                fetch('/', {
                    method: 'POST',
                    body: params,
                    headers: {
                        'Content-Type': 'application/x-www-form-urlencoded'
                    }
                })
                .then(response => {
                    if (!response.ok) {
                        throw new Error('request failed: ' + response.status);
                    }
                    return response.text();
                })
                .then(html => {
                    document.open();
                    document.write(html);
                    document.close();
                })
                .catch(error => {
                    console.error(error);
                });
            });
        </script>
    </body>
    </html>
    `
)
