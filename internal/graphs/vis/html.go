package vis

var html = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <style>
        * {
            margin: 0;
        }
        body {
            background: #0a0a0a;
        }
        #streets {
            width: 100vw;
            height: 100vh;
        }
    </style>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <script type="text/javascript"
      src="https://unpkg.com/vis-network/standalone/umd/vis-network.min.js"></script>
  </head>
  <body>
    <div id="streets"></div>
    <script type="text/javascript">
let nodesAndEdges = [%s
];

var container = document.getElementById("streets");

var data = {
  nodes: [],
  edges: [],
};

var options = {
  physics: {
    enabled: false,
  },
  nodes: {
    shape: "dot",
    size: 1,
    color: "#fafafa",
  },
  edges: {
    smooth: false,
  },
  interaction: {
    dragNodes: false,
  },
};
var network = new vis.Network(container, data, options);

let index = 0;

function addItem() {
    if (index < nodesAndEdges.length) {
        const item = nodesAndEdges[index];
        const dataType = item.type;

        if (dataType === "node") {
            network.body.data.nodes.add(item.data);
        } else if (dataType === "edge") {
            network.body.data.edges.add(item.data);
        }

        index++;
        setTimeout(addItem, %d); // milliseconds
    } else {
        network.fit();
    }
}

// Replay the network in the order it was generated.
addItem();
        </script>
  </body>
</html>`
