// SPDX-License-Identifier: MIT

// Package pointprocess provides Gibbs point processes on a bounded window
// and their exact samplers.
//
// Every model implements dcftp.Model:
//
//   - Poisson: homogeneous intensity β.
//   - Strauss: λ(x | X) = β·γ^{#{y ∈ X : |x−y| ≤ r}}, 0 ≤ γ ≤ 1.
//   - HardCore: Strauss with γ = 0; no two points within distance r.
//   - AreaInteraction: λ(x | X) = β·γ^{−|G_x \ ∪_{y∈X} G_y| / |G|} with
//     square grains G of half-side r; repulsive for γ < 1, attractive
//     for γ > 1.
//
// Sample and SampleDCFTP run dominated coupling from the past. The
// pairwise models also offer SampleGridPRS, which tiles a box window with
// cells of side r, draws each cell by dominated CFTP and repairs
// cross-cell interactions by grid partial rejection sampling. HardCore
// additionally offers SamplePRS, which redraws the union of the r-balls
// around violating points.
package pointprocess
