package views

const (
	colorYellow = "#FFD700"
	colorWhite  = "#FFFFFF"
)

const stylesheet = `
*,*::before,*::after{box-sizing:border-box}
body{margin:0;font-family:Roboto,"Helvetica Neue",Arial,sans-serif;background:#000;color:` + colorWhite + `}
a{color:inherit}
.main{min-height:100vh;background:#000;color:` + colorWhite + `}
.list-header{padding:100px 20px 60px;text-align:center;background:linear-gradient(180deg,rgba(255,215,0,.1) 0%,rgba(0,0,0,0) 100%)}
.list-header h1{color:` + colorYellow + `;font-size:3rem;font-weight:400;margin:0 0 .35em}
.list-header p{opacity:.9;max-width:600px;margin:0 auto;line-height:1.5}
.grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(300px,1fr));gap:40px;max-width:1200px;margin:0 auto;padding:40px 20px}
.card{background:rgba(0,0,0,.3);border:2px solid rgba(255,215,0,.2);border-radius:20px;overflow:hidden;transition:all .3s ease;position:relative;backdrop-filter:blur(10px)}
.card:hover{transform:translateY(-10px);border-color:` + colorYellow + `;box-shadow:0 20px 40px rgba(255,215,0,.1)}
.card:hover .card-image img{transform:scale(1.1)}
.card:hover .category{background:rgba(255,215,0,.2)}
.card-image{position:relative;height:200px;overflow:hidden}
.card-image img,.post-header img{position:absolute;inset:0;width:100%;height:100%;object-fit:cover;transition:transform .3s ease}
.card-body{padding:20px}
.card-body h2{font-size:1.5rem;font-weight:400;margin:0 0 .35em}
.card-body p{opacity:.8;margin:0 0 16px;line-height:1.43}
.date{color:` + colorYellow + `;font-size:14px;margin-bottom:10px;opacity:.8}
.category{background:rgba(255,215,0,.1);color:` + colorYellow + `;padding:4px 12px;border-radius:20px;font-size:12px;font-weight:500;margin-bottom:10px;display:inline-block}
.read-more{display:inline-block;color:` + colorYellow + `;text-decoration:none;margin-top:15px;font-weight:500;transition:all .3s ease}
.read-more:hover{opacity:.8;transform:translateX(5px)}
.post-header{position:relative;height:400px;overflow:hidden}
.post-header::after{content:'';position:absolute;inset:0;background:linear-gradient(to bottom,rgba(0,0,0,.3),rgba(0,0,0,.9))}
.post-header-content{position:absolute;bottom:40px;left:0;right:0;z-index:2;padding:0 20px;max-width:800px;margin:0 auto}
.post-header-content h1{font-size:3rem;font-weight:400;margin:0 0 .35em}
.post-header-content .category{margin-bottom:20px}
.post-header-content .date{margin:15px 0}
.post-body{max-width:800px;margin:0 auto;padding:40px 20px}
.back{display:inline-flex;align-items:center;color:` + colorYellow + `;text-decoration:none;font-size:16px;margin-bottom:30px;opacity:.8;transition:all .3s ease}
.back:hover{opacity:1;transform:translateX(-5px)}
.excerpt{opacity:.9;margin:0 0 32px;line-height:1.5}
.paragraph{margin:0 0 20px;line-height:1.8}
.message{padding:32px;font-size:1.5rem;font-weight:400;margin:0}
`
