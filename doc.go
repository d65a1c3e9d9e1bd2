/*Package rowflow is the operator core of a row-oriented batch data-processing
library.

Pipelines are built from three operators over lazily pulled, ordered streams
of rows:

	Map     applies a Mapper to every row
	Reduce  applies a Reducer to every run of rows sharing a key
	Join    merges two key-sorted streams, handing each key's rows to a Joiner

Mappers, Reducers and Joiners are stateless strategy objects configured once
and invoked many times. A catalog of common ones is provided (LowerCase,
Tokenize, Count, Sum, TopN, InnerJoiner, OuterJoiner, ...); anything else is
written by implementing the corresponding interface.

Reduce and Join require their inputs to be sorted ascending by the key
columns. rowflow never sorts: it checks the order while grouping and fails
with an OrderingViolationError as soon as a key reappears after a greater
one. Memory use is bounded by the largest group, not by the stream length.

Settings are read from a rowflowrc file or ROWFLOW_* environment variables
(see loadConfig), and include the default join collision suffixes.
*/
package rowflow
