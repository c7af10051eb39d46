package view

const stylesheet = `
:root{--primary:#16a34a;--fg:#0f172a;--muted:#64748b;--alt:#f1f5f9}
*{box-sizing:border-box}
body{margin:0;font-family:Roboto,system-ui,sans-serif;color:var(--fg)}
a{color:inherit;text-decoration:none}
.container{max-width:72rem;margin:0 auto;padding:0 1rem}
.narrow{max-width:56rem}
.nav{position:sticky;top:0;display:flex;align-items:center;justify-content:space-between;padding:1rem;background:#fffc;backdrop-filter:blur(8px);border-bottom:1px solid #e2e8f0;z-index:10}
.nav-links{display:flex;gap:2rem}
.logo{display:flex;align-items:center;gap:.5rem;font-weight:700;font-size:1.5rem}
.logo-mark{width:2.5rem;height:2.5rem;border-radius:.5rem;background:var(--primary);color:#fff;display:flex;align-items:center;justify-content:center}
.account{display:flex;align-items:center;gap:1rem}
.account form{margin:0}
.btn{display:inline-block;padding:.6rem 1.2rem;border-radius:.5rem;background:var(--primary);color:#fff;border:2px solid var(--primary);cursor:pointer;font:inherit}
.btn-outline{background:transparent;color:var(--fg)}
.btn-lg{padding:1rem 2rem;font-size:1.1rem}
.btn-block{width:100%}
.section{padding:5rem 0}
.alt{background:var(--alt)}
.hero{text-align:center}
.hero h1{font-size:3.5rem;margin:0 0 1.5rem}
.accent{color:var(--primary)}
.lead{font-size:1.2rem;color:var(--muted)}
.actions{display:flex;gap:1rem;justify-content:center;flex-wrap:wrap}
.section-head{text-align:center;margin-bottom:3rem}
.grid-3{display:grid;grid-template-columns:repeat(auto-fit,minmax(16rem,1fr));gap:1.5rem;margin-top:3rem}
.grid-4{display:grid;grid-template-columns:repeat(auto-fit,minmax(12rem,1fr));gap:2rem}
.card{border:2px solid #e2e8f0;border-radius:.75rem;padding:1.5rem;background:#fff}
.plan-grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(18rem,1fr));gap:2rem}
.plan-card{position:relative;display:block;border:2px solid #e2e8f0;border-radius:.75rem;padding:2rem;background:#fff;transition:transform .15s}
.plan-card:hover{transform:scale(1.03)}
.plan-card.popular{border-color:var(--primary);box-shadow:0 10px 20px #0002}
.plan-card.selected{outline:3px solid var(--primary);outline-offset:2px}
.plan-card ul{list-style:none;padding:0}
.plan-card li{padding:.3rem 0}
.plan-card li::before{content:"✓ ";color:var(--primary)}
.badge{position:absolute;top:-1rem;left:50%;transform:translateX(-50%);background:var(--primary);color:#fff;padding:.2rem 1rem;border-radius:999px;font-size:.85rem}
.price .amount{font-size:2.2rem;font-weight:700;color:var(--primary)}
.price .period,.placeholder{color:var(--muted)}
.placeholder{text-align:center;font-size:1.1rem}
.faq details{border:2px solid #e2e8f0;border-radius:.5rem;padding:1rem 1.5rem;margin-bottom:1rem}
.faq summary{font-weight:600;cursor:pointer}
.contact{text-align:center;margin-top:3rem}
.stat-value{font-size:2.2rem;font-weight:700;color:var(--primary)}
.footer{background:var(--fg);color:#fff;padding:3rem 0}
.footer .block{display:block;color:#fffb;padding:.2rem 0}
.copyright{text-align:center;color:#fffb;border-top:1px solid #fff3;margin-top:2rem;padding-top:2rem}
.dialog{position:fixed;top:20%;border:none;border-radius:.75rem;padding:2rem;width:min(24rem,90vw);box-shadow:0 20px 40px #0004;z-index:20}
.dialog-close{position:absolute;top:.5rem;right:1rem;font-size:1.5rem}
.field{display:block;margin-bottom:1rem}
.field input{display:block;width:100%;padding:.5rem;margin-top:.25rem;border:1px solid #cbd5e1;border-radius:.375rem}
.error{color:#dc2626}
`
