/*
Package deploy provides deployment procedure of the synthetic asset contracts.

Contracts are deployed from a single account which becomes the owner of the
oracle and the token. The procedure is safe to repeat: see [Deploy].
*/
package deploy
